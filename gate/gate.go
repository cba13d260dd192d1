// Package gate implements the per-primitive evaluation contracts of
// spec.md section 4.2: AND/OR/XOR/NAND/NOR/XNOR/NOT/BUFFER/TRI_BUFFER,
// the interactive sources TOGGLE/CLOCK/PULSE, and the sink LED. Every
// gate kind exposes the same capability set -- id, kind, input/output
// buffers, Evaluate, Reset, Delay, and an optional Toggle -- so the
// engine can hold a heterogeneous collection keyed by id without a type
// switch on the hot evaluation path.
package gate

import "github.com/metalogic/simcore/state"

// Kind tags a gate's primitive type. The string form is exactly the set
// named in spec.md section 6; an unrecognized string degrades to Buffer.
type Kind string

const (
	KindAnd        Kind = "AND"
	KindOr         Kind = "OR"
	KindNot        Kind = "NOT"
	KindXor        Kind = "XOR"
	KindNand       Kind = "NAND"
	KindNor        Kind = "NOR"
	KindXnor       Kind = "XNOR"
	KindBuffer     Kind = "BUFFER"
	KindTriBuffer  Kind = "TRI_BUFFER"
	KindToggle     Kind = "TOGGLE"
	KindClock      Kind = "CLOCK"
	KindPulse      Kind = "PULSE"
	KindLED        Kind = "LED"
)

// ParseKind maps a wire-format kind string to a Kind, falling back to
// KindBuffer for anything unrecognized so construction stays total.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindAnd, KindOr, KindNot, KindXor, KindNand, KindNor, KindXnor,
		KindBuffer, KindTriBuffer, KindToggle, KindClock, KindPulse, KindLED:
		return Kind(s)
	default:
		return KindBuffer
	}
}

// DefaultInputCount returns the input arity a gate of this kind gets when
// the caller did not specify one (an empty input_states array in the
// wire record).
func DefaultInputCount(k Kind) int {
	switch k {
	case KindAnd, KindOr, KindXor, KindNand, KindNor, KindXnor:
		return 2
	case KindNot, KindBuffer:
		return 1
	case KindTriBuffer:
		return 2
	case KindLED:
		return 1
	default: // TOGGLE, CLOCK, PULSE
		return 0
	}
}

// OutputCount returns the fixed output arity for a gate kind.
func OutputCount(k Kind) int {
	if k == KindLED {
		return 0
	}
	return 1
}

// EvalResult is what Evaluate returns: the gate's output buffer after
// evaluation, and the propagation delay it reports. Per spec.md section
// 9 the engine currently always schedules downstream work at a fixed
// +1 tick regardless of this value; Delay is still reported for forward
// compatibility and so a future reimplementation can use it without
// changing this interface.
type EvalResult struct {
	Outputs []state.State
	Delay   uint64
}

// Gate is the capability set every primitive in this package implements.
type Gate interface {
	// ID is the stable identifier assigned at construction.
	ID() string
	// Kind is the primitive type tag.
	Kind() Kind
	// InputCount is the fixed input arity.
	InputCount() int
	// OutputCount is the fixed output arity.
	OutputCount() int
	// Inputs returns the current input buffer. Callers must not mutate
	// the returned slice.
	Inputs() []state.State
	// Outputs returns the current output buffer. Callers must not mutate
	// the returned slice.
	Outputs() []state.State
	// SetInput writes a value into the input buffer at index i. Out of
	// range indices are silently ignored.
	SetInput(i int, s state.State)
	// Evaluate recomputes the output buffer from the current inputs (or
	// internal state, for sources) and returns it along with the gate's
	// reported delay.
	Evaluate() EvalResult
	// Reset returns the gate to its initial quiescent state.
	Reset()
	// Delay reports the gate's propagation delay in ticks.
	Delay() uint64
	// Toggle flips an interactive gate's internal state. It is a no-op
	// for every kind except TOGGLE.
	Toggle()
}

// New constructs a gate of the given kind. inputCount, when > 0,
// overrides the kind's default input arity (used when a GateRecord
// supplies a non-empty input_states array); 0 means "use the default".
// delay sets the propagation delay reported for combinational/BUFFER
// kinds; sources and sinks always report 0 regardless of delay.
func New(id string, k Kind, inputCount int, delay uint64) Gate {
	n := inputCount
	if n <= 0 {
		n = DefaultInputCount(k)
	}

	switch k {
	case KindAnd:
		return newReductionGate(id, KindAnd, n, delay, state.And)
	case KindOr:
		return newReductionGate(id, KindOr, n, delay, state.Or)
	case KindXor:
		return newReductionGate(id, KindXor, n, delay, state.Xor)
	case KindNand:
		return newReductionGate(id, KindNand, n, delay, negate(state.And))
	case KindNor:
		return newReductionGate(id, KindNor, n, delay, negate(state.Or))
	case KindXnor:
		return newReductionGate(id, KindXnor, n, delay, negate(state.Xor))
	case KindNot:
		return newNotGate(id, delay)
	case KindTriBuffer:
		return newTriBufferGate(id, delay)
	case KindToggle:
		return newToggleGate(id)
	case KindClock:
		return newClockGate(id)
	case KindPulse:
		return newPulseGate(id)
	case KindLED:
		return newLEDGate(id, n)
	case KindBuffer:
		return newBufferGate(id, delay)
	default:
		return newBufferGate(id, delay)
	}
}

func negate(reduce func(...state.State) state.State) func(...state.State) state.State {
	return func(ins ...state.State) state.State {
		return state.Not(reduce(ins...))
	}
}

func unknownSlice(n int) []state.State {
	s := make([]state.State, n)
	for i := range s {
		s[i] = state.Unknown
	}
	return s
}
