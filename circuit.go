package main

// GateKind tags the three operations an ansatz is built from.
type GateKind int

const (
	RotateX GateKind = iota
	RotateZ
	PhaseCouple
)

func (k GateKind) String() string {
	switch k {
	case RotateX:
		return "RX"
	case RotateZ:
		return "RZ"
	case PhaseCouple:
		return "CZ"
	default:
		return "?"
	}
}

// GateOp is one operation in the ansatz sequence. Rotation gates reference a
// slot in the flat parameter vector; PhaseCouple carries no parameter and
// acts on the (Target, Partner) qubit pair.
type GateOp struct {
	Kind       GateKind
	Target     int
	Partner    int // second qubit for PhaseCouple, -1 otherwise
	ParamIndex int // slot in the parameter vector, -1 for PhaseCouple
}

// Ansatz is the layered rotation circuit being grown. Ops is strictly
// append-only: AddLayer never removes or reorders existing operations, so
// previously-claimed parameter slots stay valid as a prefix of any longer
// parameter vector.
type Ansatz struct {
	NumQubits int
	Ops       []GateOp
	NumParams int
	Layers    int
}

// NewAnsatz returns an empty ansatz for an n-qubit register.
func NewAnsatz(numQubits int) (*Ansatz, error) {
	if numQubits < 1 {
		return nil, &DimensionError{Qubit: -1, NumQubits: numQubits}
	}
	return &Ansatz{NumQubits: numQubits}, nil
}

// AddLayer appends one layer: an odd block of n RX gates (one fresh
// parameter slot each), then an even block of n RZ gates (fresh slots)
// followed by all n*(n-1)/2 CZ couplings, pairs (i,j) with i<j in
// lexicographic order.
func (a *Ansatz) AddLayer() {
	for q := 0; q < a.NumQubits; q++ {
		a.Ops = append(a.Ops, GateOp{Kind: RotateX, Target: q, Partner: -1, ParamIndex: a.NumParams})
		a.NumParams++
	}
	for q := 0; q < a.NumQubits; q++ {
		a.Ops = append(a.Ops, GateOp{Kind: RotateZ, Target: q, Partner: -1, ParamIndex: a.NumParams})
		a.NumParams++
	}
	for i := 0; i < a.NumQubits; i++ {
		for j := i + 1; j < a.NumQubits; j++ {
			a.Ops = append(a.Ops, GateOp{Kind: PhaseCouple, Target: i, Partner: j, ParamIndex: -1})
		}
	}
	a.Layers++
}

// Clone returns an independent copy, so concurrent experiments can grow
// their own ansatz without sharing op slices.
func (a *Ansatz) Clone() *Ansatz {
	ops := make([]GateOp, len(a.Ops))
	copy(ops, a.Ops)
	return &Ansatz{NumQubits: a.NumQubits, Ops: ops, NumParams: a.NumParams, Layers: a.Layers}
}

// Run initializes |0...0> and applies every op in order, rotation gates
// consuming their angle by stored slot index. The output is bit-for-bit
// reproducible for a fixed op sequence and parameter vector.
func (a *Ansatz) Run(params []float64) (*StateVector, error) {
	if len(params) != a.NumParams {
		return nil, &ParameterMismatchError{Want: a.NumParams, Got: len(params)}
	}
	state := NewStateVector(a.NumQubits)
	for _, op := range a.Ops {
		if err := state.Apply(op, params); err != nil {
			return nil, err
		}
	}
	return state, nil
}
