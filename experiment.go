package main

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
)

// LayerResult is one point of the distance curve: the minimum squared
// distance the optimizer found at this circuit depth.
type LayerResult struct {
	Layers int
	Cost   float64
	Evals  int
	// Best is the lowest cost seen across all depths tried so far. It is
	// diagnostic only: a finite-budget search at a deeper circuit may land
	// worse than a shallower one, so Cost itself need not be monotone.
	Best float64
}

// Experiment grows an ansatz layer by layer toward one fixed random target
// state, re-optimizing after each growth step. Steps are strictly
// sequential: each step's initial point is the previous step's best point
// padded with fresh random angles for the new slots.
type Experiment struct {
	RunID  string
	Config Config

	rng        *rand.Rand
	target     *StateVector
	ansatz     *Ansatz
	opt        Optimizer
	bestParams []float64
	bestCost   float64
	results    []LayerResult
}

// NewExperiment samples the target state and prepares an empty ansatz.
func NewExperiment(cfg Config) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	ansatz, err := NewAnsatz(cfg.Qubits)
	if err != nil {
		return nil, err
	}
	nm := NewNelderMead(cfg.Seed)
	nm.Workers = cfg.Workers
	return &Experiment{
		RunID:    uuid.NewString(),
		Config:   cfg,
		rng:      rng,
		target:   RandomState(cfg.Qubits, rng),
		ansatz:   ansatz,
		opt:      nm,
		bestCost: math.Inf(1),
	}, nil
}

// Target returns the state being approximated.
func (e *Experiment) Target() *StateVector { return e.target }

// Results returns the distance curve recorded so far.
func (e *Experiment) Results() []LayerResult { return e.results }

// BestParams returns the best parameter vector from the latest step.
func (e *Experiment) BestParams() []float64 { return e.bestParams }

// Done reports whether the configured layer sweep is complete.
func (e *Experiment) Done() bool { return e.ansatz.Layers >= e.Config.Layers }

// Step grows the ansatz by one layer, seeds the new parameter slots with
// uniform angles in [0, 2*pi), and re-optimizes.
func (e *Experiment) Step() (LayerResult, error) {
	e.ansatz.AddLayer()

	initial := make([]float64, e.ansatz.NumParams)
	copy(initial, e.bestParams)
	for i := len(e.bestParams); i < len(initial); i++ {
		initial[i] = e.rng.Float64() * 2 * math.Pi
	}

	cost, err := e.ansatz.CostFunc(e.target)
	if err != nil {
		return LayerResult{}, err
	}
	res := e.opt.Minimize(cost, initial, e.Config.Budget)
	e.bestParams = res.Params
	if res.Cost < e.bestCost {
		e.bestCost = res.Cost
	}

	lr := LayerResult{
		Layers: e.ansatz.Layers,
		Cost:   res.Cost,
		Evals:  res.Evals,
		Best:   e.bestCost,
	}
	e.results = append(e.results, lr)
	return lr, nil
}

// Run executes the full layer sweep and returns the distance curve.
func (e *Experiment) Run() ([]LayerResult, error) {
	for !e.Done() {
		if _, err := e.Step(); err != nil {
			return nil, err
		}
	}
	return e.results, nil
}

// SeedRun is one completed sweep of a multi-seed comparison.
type SeedRun struct {
	RunID   string
	Seed    int64
	Results []LayerResult
}

// RunSeeds runs the same sweep once per seed, each with its own target,
// rng, and ansatz, on up to workers goroutines. Output order follows the
// seed list, not completion order.
func RunSeeds(cfg Config, seeds []int64, workers int) ([]SeedRun, error) {
	runs := make([]SeedRun, len(seeds))
	errs := make([]error, len(seeds))

	p := pool.New().WithMaxGoroutines(max(workers, 1))
	for i, seed := range seeds {
		i, seed := i, seed
		p.Go(func() {
			c := cfg
			c.Seed = seed
			exp, err := NewExperiment(c)
			if err != nil {
				errs[i] = err
				return
			}
			results, err := exp.Run()
			if err != nil {
				errs[i] = err
				return
			}
			runs[i] = SeedRun{RunID: exp.RunID, Seed: seed, Results: results}
		})
	}
	p.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return runs, nil
}
