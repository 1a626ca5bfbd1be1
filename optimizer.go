package main

import (
	"math"
	"math/rand"
	"sort"

	"github.com/sourcegraph/conc/pool"
)

// Result is what one optimizer run produced: the best parameter vector
// found, its cost, and how many cost evaluations were spent.
type Result struct {
	Params []float64
	Cost   float64
	Evals  int
}

// Optimizer minimizes a black-box real-valued cost over a parameter vector
// of known dimension, given an initial point and a maximum-evaluation
// budget. Running out of budget is normal termination, not an error: the
// best point found so far is returned.
type Optimizer interface {
	Minimize(cost func([]float64) float64, initial []float64, budget int) Result
}

// NelderMead is a derivative-free downhill-simplex minimizer. When a simplex
// collapses before the budget runs out it restarts around the best point
// with a randomly perturbed edge length, which helps on the many local
// minima a 2*pi-periodic rotation landscape has. Batch steps (initial
// simplex, shrink) run on up to Workers goroutines; results merge in index
// order so a run is reproducible for a fixed seed.
type NelderMead struct {
	Step    float64 // initial simplex edge length
	Workers int     // parallel cost evaluations for batch steps, 1 = sequential
	rng     *rand.Rand
}

// NewNelderMead returns a minimizer with its own seeded random source.
func NewNelderMead(seed int64) *NelderMead {
	return &NelderMead{
		Step:    0.5,
		Workers: 1,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// nmSearch carries the shared evaluation counter and best-so-far across
// restarts within a single Minimize call.
type nmSearch struct {
	cost    func([]float64) float64
	budget  int
	evals   int
	workers int
	best    []float64
	bestF   float64
}

func (s *nmSearch) remaining() int { return s.budget - s.evals }

func (s *nmSearch) track(x []float64, f float64) {
	if f < s.bestF {
		s.bestF = f
		s.best = append(s.best[:0], x...)
	}
}

// eval spends one budget unit. Callers must check remaining() first.
func (s *nmSearch) eval(x []float64) float64 {
	f := s.cost(x)
	s.evals++
	s.track(x, f)
	return f
}

// evalBatch evaluates up to remaining() of the given points, in parallel
// when the whole batch fits and more than one worker is configured.
// Unevaluated points report +Inf. The best-point merge always runs in index
// order.
func (s *nmSearch) evalBatch(pts [][]float64) []float64 {
	vals := make([]float64, len(pts))
	for i := range vals {
		vals[i] = math.Inf(1)
	}
	n := len(pts)
	if n > s.remaining() {
		n = s.remaining()
	}
	if s.workers > 1 && n == len(pts) && n > 1 {
		p := pool.New().WithMaxGoroutines(s.workers)
		for i := 0; i < n; i++ {
			i := i
			p.Go(func() {
				vals[i] = s.cost(pts[i])
			})
		}
		p.Wait()
	} else {
		for i := 0; i < n; i++ {
			vals[i] = s.cost(pts[i])
		}
	}
	for i := 0; i < n; i++ {
		s.evals++
		s.track(pts[i], vals[i])
	}
	return vals
}

// Minimize runs restarted Nelder-Mead until the evaluation budget is spent.
func (nm *NelderMead) Minimize(cost func([]float64) float64, initial []float64, budget int) Result {
	d := len(initial)
	s := &nmSearch{
		cost:    cost,
		budget:  budget,
		workers: max(nm.Workers, 1),
		best:    append([]float64(nil), initial...),
		bestF:   math.Inf(1),
	}
	if d == 0 || budget < 1 {
		if budget >= 1 {
			s.eval(initial)
		}
		return Result{Params: s.best, Cost: s.bestF, Evals: s.evals}
	}

	step := nm.Step
	perturb := false
	for s.remaining() > 0 {
		seed := append([]float64(nil), s.best...)
		nm.runSimplex(s, seed, step, perturb)
		// Restart around the best point with a fresh edge length.
		step = nm.Step * (0.3 + 0.7*nm.rng.Float64())
		perturb = true
	}
	return Result{Params: s.best, Cost: s.bestF, Evals: s.evals}
}

// vertex pairs a simplex point with its cost value.
type vertex struct {
	x []float64
	f float64
}

// runSimplex performs one downhill-simplex descent from seed until the
// simplex collapses or the budget runs out.
func (nm *NelderMead) runSimplex(s *nmSearch, seed []float64, step float64, perturb bool) {
	const (
		alpha = 1.0 // reflection
		gamma = 2.0 // expansion
		beta  = 0.5 // contraction
		sigma = 0.5 // shrink
		ftol  = 1e-12
	)
	d := len(seed)

	pts := make([][]float64, d+1)
	pts[0] = append([]float64(nil), seed...)
	for i := 1; i <= d; i++ {
		p := append([]float64(nil), seed...)
		h := step
		if perturb && nm.rng.Intn(2) == 1 {
			h = -step
		}
		p[i-1] += h
		pts[i] = p
	}
	fv := s.evalBatch(pts)

	verts := make([]vertex, d+1)
	for i := range verts {
		verts[i] = vertex{x: pts[i], f: fv[i]}
	}

	centroid := make([]float64, d)
	xr := make([]float64, d)
	xe := make([]float64, d)
	xc := make([]float64, d)

	for s.remaining() > 0 {
		sort.SliceStable(verts, func(i, j int) bool { return verts[i].f < verts[j].f })
		if verts[d].f-verts[0].f < ftol {
			return
		}

		// Centroid of all vertices but the worst.
		for k := range centroid {
			centroid[k] = 0
		}
		for i := 0; i < d; i++ {
			for k, v := range verts[i].x {
				centroid[k] += v
			}
		}
		for k := range centroid {
			centroid[k] /= float64(d)
		}

		worst := verts[d]
		for k := range xr {
			xr[k] = centroid[k] + alpha*(centroid[k]-worst.x[k])
		}
		fr := s.eval(xr)

		switch {
		case fr < verts[0].f:
			if s.remaining() == 0 {
				verts[d] = vertex{x: append([]float64(nil), xr...), f: fr}
				return
			}
			for k := range xe {
				xe[k] = centroid[k] + gamma*(xr[k]-centroid[k])
			}
			fe := s.eval(xe)
			if fe < fr {
				verts[d] = vertex{x: append([]float64(nil), xe...), f: fe}
			} else {
				verts[d] = vertex{x: append([]float64(nil), xr...), f: fr}
			}
		case fr < verts[d-1].f:
			verts[d] = vertex{x: append([]float64(nil), xr...), f: fr}
		default:
			if s.remaining() == 0 {
				return
			}
			if fr < worst.f {
				// Outside contraction, toward the reflected point.
				for k := range xc {
					xc[k] = centroid[k] + beta*(xr[k]-centroid[k])
				}
			} else {
				// Inside contraction, toward the worst point.
				for k := range xc {
					xc[k] = centroid[k] - beta*(centroid[k]-worst.x[k])
				}
			}
			fc := s.eval(xc)
			if fc < math.Min(fr, worst.f) {
				verts[d] = vertex{x: append([]float64(nil), xc...), f: fc}
			} else {
				// Shrink everything toward the best vertex.
				shrunk := make([][]float64, d)
				for i := 1; i <= d; i++ {
					p := make([]float64, d)
					for k := range p {
						p[k] = verts[0].x[k] + sigma*(verts[i].x[k]-verts[0].x[k])
					}
					shrunk[i-1] = p
				}
				sf := s.evalBatch(shrunk)
				for i := 1; i <= d; i++ {
					verts[i] = vertex{x: shrunk[i-1], f: sf[i-1]}
				}
			}
		}
	}
}
