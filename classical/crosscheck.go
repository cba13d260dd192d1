package classical

import "github.com/metalogic/simcore/state"

// BoolOp maps a combinational gate kind's name, as reported by
// gate.Gate.Kind, to its two-valued truth function.
var BoolOp = map[string]func(inputs ...bool) bool{
	"AND":  And,
	"OR":   Or,
	"XOR":  Xor,
	"NAND": Nand,
	"NOR":  Nor,
	"XNOR": Xnor,
	"NOT":  func(inputs ...bool) bool { return Not(inputs[0]) },
}

// CrossCheck compares a gate package evaluation against this package's
// two-valued reference implementation for the same kind and inputs. ok is
// false if kind has no boolean reference or any input is Unknown, HiZ, or
// Conflict, since those have no two-valued equivalent; otherwise match
// reports whether got agrees with the reference output.
func CrossCheck(kind string, inputs []state.State, got state.State) (match, ok bool) {
	fn, known := BoolOp[kind]
	if !known {
		return false, false
	}
	bools := make([]bool, len(inputs))
	for i, s := range inputs {
		if s != state.Zero && s != state.One {
			return false, false
		}
		bools[i] = s == state.One
	}
	want := boolToState(fn(bools...))
	return want == got, true
}

func boolToState(b bool) state.State {
	if b {
		return state.One
	}
	return state.Zero
}
