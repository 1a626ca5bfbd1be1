package main

import (
	"math"
	"math/rand"
	"testing"
)

func TestCostWithoutGatesMatchesClosedForm(t *testing.T) {
	// With zero layers the circuit is empty and the output stays |0000>,
	// so the cost must equal 2 - 2*Re<target|0000> = 2 - 2*Re(target_0)
	// without any optimizer involved.
	rng := rand.New(rand.NewSource(23))
	target := RandomState(4, rng)

	a, err := NewAnsatz(4)
	if err != nil {
		t.Fatal(err)
	}
	cost, err := a.CostFunc(target)
	if err != nil {
		t.Fatal(err)
	}

	got := cost(nil)
	want := 2 - 2*real(target.Amplitudes[0])
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("cost = %g, want %g", got, want)
	}
}

func TestCostRange(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	target := RandomState(3, rng)

	a, err := NewAnsatz(3)
	if err != nil {
		t.Fatal(err)
	}
	a.AddLayer()
	cost, err := a.CostFunc(target)
	if err != nil {
		t.Fatal(err)
	}

	for trial := 0; trial < 50; trial++ {
		params := make([]float64, a.NumParams)
		for i := range params {
			params[i] = rng.Float64() * 2 * math.Pi
		}
		v := cost(params)
		if v < 0 || v > 4 {
			t.Errorf("cost %g outside [0, 4] for unit vectors", v)
		}
	}
}

func TestCostExactTargetIsZero(t *testing.T) {
	// Use the circuit's own output as the target: the cost at those same
	// angles must be zero up to round-off (and clamped, never negative).
	a, err := NewAnsatz(2)
	if err != nil {
		t.Fatal(err)
	}
	a.AddLayer()
	params := []float64{0.3, 1.1, 2.2, 0.7}

	target, err := a.Run(params)
	if err != nil {
		t.Fatal(err)
	}
	cost, err := a.CostFunc(target)
	if err != nil {
		t.Fatal(err)
	}

	v := cost(params)
	if v < 0 {
		t.Errorf("cost %g negative, clamp failed", v)
	}
	if v > 1e-12 {
		t.Errorf("cost at exact target = %g, want ~0", v)
	}
}

func TestCostFuncRejectsMismatchedTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	target := RandomState(3, rng)

	a, err := NewAnsatz(4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.CostFunc(target); err == nil {
		t.Error("expected DimensionError for 3-qubit target against 4-qubit ansatz")
	} else if _, ok := err.(*DimensionError); !ok {
		t.Errorf("expected *DimensionError, got %T", err)
	}
}
