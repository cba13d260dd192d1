// Package state implements the 5-valued logic algebra that every gate and
// wire in the simulator is built on top of: Zero, One, HiZ, Conflict, and
// Unknown. The NOT/AND/OR/XOR tables and the multi-driver wire resolution
// function here are the sole source of truth for observable simulator
// behavior -- every gate in package gate and every wire in package engine
// reduces to a call into this package.
package state

import "fmt"

// State is a tagged 5-valued logic level. The zero value is Unknown, which
// matches the simulator's default for unconstructed inputs and wires.
type State uint8

// The in-memory values differ from the wire encoding (Zero=0 .. Unknown=4):
// Unknown is declared first so that it is the zero value, and Byte/FromByte
// translate between the two.
const (
	// Unknown is the default: not yet established.
	Unknown State = iota
	// Zero is a driven logic low.
	Zero
	// One is a driven logic high.
	One
	// HiZ is high impedance: the wire or port is not currently driven.
	HiZ
	// Conflict marks contradictory drivers on the same wire.
	Conflict
)

// FromByte decodes a wire-encoded state. Any value outside 0..=4 decodes as
// Unknown, matching spec.md's boundary encoding rule.
func FromByte(b uint8) State {
	if b >= 4 {
		return Unknown
	}
	return State(b + 1)
}

// Byte encodes the state to its fixed small-unsigned-integer wire form.
func (s State) Byte() uint8 {
	if s == Unknown {
		return 4
	}
	return uint8(s) - 1
}

// String renders the state for logs and debug output.
func (s State) String() string {
	switch s {
	case Zero:
		return "Zero"
	case One:
		return "One"
	case HiZ:
		return "HiZ"
	case Conflict:
		return "Conflict"
	case Unknown:
		return "Unknown"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Not computes the unary NOT of s.
//
//	Zero -> One, One -> Zero, HiZ -> Unknown, Conflict -> Conflict, Unknown -> Unknown
func Not(s State) State {
	switch s {
	case Zero:
		return One
	case One:
		return Zero
	case HiZ:
		return Unknown
	case Conflict:
		return Conflict
	default:
		return Unknown
	}
}

// And reduces inputs with the AND table: Zero is absorbing, then Conflict,
// then Unknown, then HiZ (an undriven input poisons the gate to Unknown);
// otherwise One. An empty input set returns Unknown.
func And(inputs ...State) State {
	if len(inputs) == 0 {
		return Unknown
	}
	sawConflict, sawUnknown, sawHiZ := false, false, false
	for _, in := range inputs {
		switch in {
		case Zero:
			return Zero
		case Conflict:
			sawConflict = true
		case Unknown:
			sawUnknown = true
		case HiZ:
			sawHiZ = true
		}
	}
	switch {
	case sawConflict:
		return Conflict
	case sawUnknown:
		return Unknown
	case sawHiZ:
		return Unknown
	default:
		return One
	}
}

// Or mirrors And with One as the absorbing element and Zero as the default.
func Or(inputs ...State) State {
	if len(inputs) == 0 {
		return Unknown
	}
	sawConflict, sawUnknown, sawHiZ := false, false, false
	for _, in := range inputs {
		switch in {
		case One:
			return One
		case Conflict:
			sawConflict = true
		case Unknown:
			sawUnknown = true
		case HiZ:
			sawHiZ = true
		}
	}
	switch {
	case sawConflict:
		return Conflict
	case sawUnknown:
		return Unknown
	case sawHiZ:
		return Unknown
	default:
		return Zero
	}
}

// Xor left-folds the XOR table over inputs: Conflict dominates, then
// Unknown, then HiZ collapses to Unknown; otherwise equal operands yield
// Zero and differing operands yield One. An empty input set returns
// Unknown.
func Xor(inputs ...State) State {
	if len(inputs) == 0 {
		return Unknown
	}
	result := inputs[0]
	for _, in := range inputs[1:] {
		result = xorPair(result, in)
	}
	return result
}

func xorPair(a, b State) State {
	if a == Conflict || b == Conflict {
		return Conflict
	}
	if a == Unknown || b == Unknown {
		return Unknown
	}
	if a == HiZ || b == HiZ {
		return Unknown
	}
	if a == b {
		return Zero
	}
	return One
}

// Resolve collapses the multiset of driver states on a single wire target
// port into one resolved value, per spec.md section 4.1:
//
//   - no drivers           -> HiZ
//   - any Conflict driver  -> Conflict
//   - both Zero and One    -> Conflict
//   - only One             -> One
//   - only Zero            -> Zero
//   - only Unknown/HiZ     -> Unknown if any Unknown was seen, else HiZ
//
// HiZ drivers never contribute a value; they are transparent to resolution.
func Resolve(drivers ...State) State {
	if len(drivers) == 0 {
		return HiZ
	}

	sawZero, sawOne, sawUnknown := false, false, false
	for _, d := range drivers {
		switch d {
		case Conflict:
			return Conflict
		case Zero:
			sawZero = true
		case One:
			sawOne = true
		case Unknown:
			sawUnknown = true
		case HiZ:
			// undriven; ignored
		}
	}

	switch {
	case sawZero && sawOne:
		return Conflict
	case sawOne:
		return One
	case sawZero:
		return Zero
	case sawUnknown:
		return Unknown
	default:
		return HiZ
	}
}
