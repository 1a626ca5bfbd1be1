package main

// CostFunc returns the black-box cost the optimizer minimizes: simulate the
// ansatz at the given angles and measure the squared distance to target.
// Fails with DimensionError when the target lives in a different register
// size than the ansatz.
func (a *Ansatz) CostFunc(target *StateVector) (func([]float64) float64, error) {
	if target.NumQubits != a.NumQubits {
		return nil, &DimensionError{Qubit: -1, NumQubits: a.NumQubits}
	}
	return func(params []float64) float64 {
		out, err := a.Run(params)
		if err != nil {
			// The ansatz validates its ops at construction and the
			// optimizer preserves vector length, so this is a
			// construction bug.
			panic(err)
		}
		return StateDistance(out, target)
	}, nil
}
