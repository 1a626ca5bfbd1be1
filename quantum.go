package main

import (
	"math"
	"math/cmplx"
	"math/rand"
)

type Complex = complex128

// StateVector holds the 2^n complex amplitudes of an n-qubit register.
// Indexing is little-endian: qubit q is bit 1<<q of the basis index, so
// basis state 0b0101 has qubits 0 and 2 in |1>. All gate application
// methods use the same convention.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

// NewStateVector returns the all-zero basis state |0...0>.
func NewStateVector(numQubits int) *StateVector {
	n := 1 << numQubits
	amps := make([]Complex, n)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// Apply performs a single gate operation in place. Rotation gates take their
// angle from params at the op's declared slot. Qubit indices outside the
// register fail with DimensionError.
func (s *StateVector) Apply(op GateOp, params []float64) error {
	if op.Target < 0 || op.Target >= s.NumQubits {
		return &DimensionError{Qubit: op.Target, NumQubits: s.NumQubits}
	}
	switch op.Kind {
	case RotateX:
		s.applySingle(op.Target, RXMatrix(params[op.ParamIndex]))
	case RotateZ:
		s.applyRZ(op.Target, params[op.ParamIndex])
	case PhaseCouple:
		if op.Partner < 0 || op.Partner >= s.NumQubits {
			return &DimensionError{Qubit: op.Partner, NumQubits: s.NumQubits}
		}
		s.applyCZ(op.Target, op.Partner)
	}
	return nil
}

// applySingle applies a 2x2 unitary to qubit q. Only amplitude pairs that
// differ in exactly bit q mix; all other bits stay fixed, so the full
// 2^n x 2^n matrix is never built.
func (s *StateVector) applySingle(q int, m GateMatrix) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = m[0][0]*a0 + m[0][1]*a1
			s.Amplitudes[j] = m[1][0]*a0 + m[1][1]*a1
		}
	}
}

// applyRZ is the diagonal special case: phase e^{+i*theta/2} where bit q is
// set, conjugate phase where it is clear.
func (s *StateVector) applyRZ(q int, theta float64) {
	n := len(s.Amplitudes)
	bit := 1 << q
	phase := cmplx.Exp(complex(0, theta/2))
	for i := 0; i < n; i++ {
		if i&bit != 0 {
			s.Amplitudes[i] *= phase
		} else {
			s.Amplitudes[i] *= cmplx.Conj(phase)
		}
	}
}

// applyCZ flips the sign of every amplitude where both qubits are 1.
func (s *StateVector) applyCZ(q1, q2 int) {
	n := len(s.Amplitudes)
	b1 := 1 << q1
	b2 := 1 << q2
	for i := 0; i < n; i++ {
		if i&b1 != 0 && i&b2 != 0 {
			s.Amplitudes[i] *= -1
		}
	}
}

// Norm returns the sum of squared magnitudes. It stays 1 (up to
// floating-point tolerance) under any of the gates above.
func (s *StateVector) Norm() float64 {
	total := 0.0
	for _, amp := range s.Amplitudes {
		total += real(amp)*real(amp) + imag(amp)*imag(amp)
	}
	return total
}

// InnerProduct returns <a|b>, conjugating a.
func InnerProduct(a, b *StateVector) Complex {
	var total Complex
	for i := range a.Amplitudes {
		total += cmplx.Conj(a.Amplitudes[i]) * b.Amplitudes[i]
	}
	return total
}

// StateDistance returns ||a - b||^2, the sum of squared magnitudes of the
// complex difference. For unit vectors this equals 2 - 2*Re<a|b>. Global
// phase is not factored out: states differing only by an overall phase score
// as far apart. Round-off below zero is clamped.
func StateDistance(a, b *StateVector) float64 {
	total := 0.0
	for i := range a.Amplitudes {
		d := a.Amplitudes[i] - b.Amplitudes[i]
		total += real(d)*real(d) + imag(d)*imag(d)
	}
	if total < 0 {
		total = 0
	}
	return total
}

// RandomState samples a state uniformly from the unit sphere in 2^n
// dimensions: independent complex Gaussian amplitudes, normalized.
func RandomState(numQubits int, rng *rand.Rand) *StateVector {
	n := 1 << numQubits
	amps := make([]Complex, n)
	for i := range amps {
		amps[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	s := &StateVector{Amplitudes: amps, NumQubits: numQubits}
	norm := math.Sqrt(s.Norm())
	inv := complex(1/norm, 0)
	for i := range amps {
		amps[i] *= inv
	}
	return s
}
