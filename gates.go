package main

import "math"

// GateMatrix is a 2x2 single-qubit unitary, row-major.
type GateMatrix [2][2]Complex

// RXMatrix returns the rotation about the X axis:
//
//	Rx(theta) = cos(theta/2)*I - i*sin(theta/2)*X
func RXMatrix(theta float64) GateMatrix {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	return GateMatrix{
		{c, js},
		{js, c},
	}
}

// RZMatrix returns the rotation about the Z axis:
//
//	Rz(theta) = diag(e^{-i*theta/2}, e^{+i*theta/2})
func RZMatrix(theta float64) GateMatrix {
	return GateMatrix{
		{complex(math.Cos(theta/2), -math.Sin(theta/2)), 0},
		{0, complex(math.Cos(theta/2), math.Sin(theta/2))},
	}
}

// The CZ gate has no matrix constructor here: it is diagonal, so the
// simulator applies it as a sign flip on every basis state where both
// coupled qubits are 1 (see StateVector.applyCZ).
