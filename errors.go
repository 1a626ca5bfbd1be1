package main

import "fmt"

// DimensionError reports a qubit index or statevector size that does not fit
// the register the operation was built for. It always indicates a
// construction bug in the caller and is never recovered from.
type DimensionError struct {
	Qubit     int // offending qubit index, or -1 for a size mismatch
	NumQubits int
}

func (e *DimensionError) Error() string {
	if e.Qubit < 0 {
		return fmt.Sprintf("dimension error: statevector size does not match a %d-qubit register", e.NumQubits)
	}
	return fmt.Sprintf("dimension error: qubit %d out of range for %d-qubit register", e.Qubit, e.NumQubits)
}

// ParameterMismatchError reports a parameter vector whose length does not
// equal the number of slots declared by the gate sequence.
type ParameterMismatchError struct {
	Want int
	Got  int
}

func (e *ParameterMismatchError) Error() string {
	return fmt.Sprintf("parameter mismatch: gate sequence declares %d slots, got %d values", e.Want, e.Got)
}
