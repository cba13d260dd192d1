package gate

import "github.com/metalogic/simcore/state"

// reductionGate implements AND/OR/XOR and their complements: an N-input,
// single-output gate whose Evaluate left-folds reduce over the current
// inputs. An empty input buffer (N == 0) evaluates to Unknown, matching
// the reduce functions' own empty-input convention.
type reductionGate struct {
	id      string
	kind    Kind
	inputs  []state.State
	outputs []state.State
	delay   uint64
	reduce  func(...state.State) state.State
}

func newReductionGate(id string, k Kind, n int, delay uint64, reduce func(...state.State) state.State) *reductionGate {
	if n < 0 {
		n = 0
	}
	return &reductionGate{
		id:      id,
		kind:    k,
		inputs:  unknownSlice(n),
		outputs: unknownSlice(1),
		delay:   delay,
		reduce:  reduce,
	}
}

func (g *reductionGate) ID() string            { return g.id }
func (g *reductionGate) Kind() Kind            { return g.kind }
func (g *reductionGate) InputCount() int       { return len(g.inputs) }
func (g *reductionGate) OutputCount() int      { return 1 }
func (g *reductionGate) Inputs() []state.State { return g.inputs }
func (g *reductionGate) Outputs() []state.State { return g.outputs }
func (g *reductionGate) Delay() uint64         { return g.delay }
func (g *reductionGate) Toggle()               {}

func (g *reductionGate) SetInput(i int, s state.State) {
	if i >= 0 && i < len(g.inputs) {
		g.inputs[i] = s
	}
}

func (g *reductionGate) Evaluate() EvalResult {
	g.outputs[0] = g.reduce(g.inputs...)
	return EvalResult{Outputs: g.outputs, Delay: g.delay}
}

func (g *reductionGate) Reset() {
	for i := range g.inputs {
		g.inputs[i] = state.Unknown
	}
	g.outputs[0] = state.Unknown
}

// notGate is the single-input inverter.
type notGate struct {
	id      string
	inputs  []state.State
	outputs []state.State
	delay   uint64
}

func newNotGate(id string, delay uint64) *notGate {
	return &notGate{id: id, inputs: unknownSlice(1), outputs: unknownSlice(1), delay: delay}
}

func (g *notGate) ID() string             { return g.id }
func (g *notGate) Kind() Kind             { return KindNot }
func (g *notGate) InputCount() int        { return 1 }
func (g *notGate) OutputCount() int       { return 1 }
func (g *notGate) Inputs() []state.State  { return g.inputs }
func (g *notGate) Outputs() []state.State { return g.outputs }
func (g *notGate) Delay() uint64          { return g.delay }
func (g *notGate) Toggle()                {}

func (g *notGate) SetInput(i int, s state.State) {
	if i == 0 {
		g.inputs[0] = s
	}
}

func (g *notGate) Evaluate() EvalResult {
	g.outputs[0] = state.Not(g.inputs[0])
	return EvalResult{Outputs: g.outputs, Delay: g.delay}
}

func (g *notGate) Reset() {
	g.inputs[0] = state.Unknown
	g.outputs[0] = state.Unknown
}

// bufferGate passes its single input through unchanged. It is also the
// construction fallback for unrecognized gate kinds (spec.md section 7).
type bufferGate struct {
	id      string
	inputs  []state.State
	outputs []state.State
	delay   uint64
}

func newBufferGate(id string, delay uint64) *bufferGate {
	return &bufferGate{id: id, inputs: unknownSlice(1), outputs: unknownSlice(1), delay: delay}
}

func (g *bufferGate) ID() string             { return g.id }
func (g *bufferGate) Kind() Kind             { return KindBuffer }
func (g *bufferGate) InputCount() int        { return 1 }
func (g *bufferGate) OutputCount() int       { return 1 }
func (g *bufferGate) Inputs() []state.State  { return g.inputs }
func (g *bufferGate) Outputs() []state.State { return g.outputs }
func (g *bufferGate) Delay() uint64          { return g.delay }
func (g *bufferGate) Toggle()                {}

func (g *bufferGate) SetInput(i int, s state.State) {
	if i == 0 {
		g.inputs[0] = s
	}
}

func (g *bufferGate) Evaluate() EvalResult {
	g.outputs[0] = g.inputs[0]
	return EvalResult{Outputs: g.outputs, Delay: g.delay}
}

func (g *bufferGate) Reset() {
	g.inputs[0] = state.Unknown
	g.outputs[0] = state.Unknown
}

// triBufferGate is a 2-input tri-state buffer: input 0 is data, input 1 is
// enable. Driving enable high passes data through; driving it low forces
// HiZ; anything else (Unknown/Conflict) poisons the output to Unknown.
type triBufferGate struct {
	id      string
	inputs  []state.State
	outputs []state.State
	delay   uint64
}

func newTriBufferGate(id string, delay uint64) *triBufferGate {
	return &triBufferGate{id: id, inputs: unknownSlice(2), outputs: unknownSlice(1), delay: delay}
}

func (g *triBufferGate) ID() string             { return g.id }
func (g *triBufferGate) Kind() Kind             { return KindTriBuffer }
func (g *triBufferGate) InputCount() int        { return 2 }
func (g *triBufferGate) OutputCount() int       { return 1 }
func (g *triBufferGate) Inputs() []state.State  { return g.inputs }
func (g *triBufferGate) Outputs() []state.State { return g.outputs }
func (g *triBufferGate) Delay() uint64          { return g.delay }
func (g *triBufferGate) Toggle()                {}

func (g *triBufferGate) SetInput(i int, s state.State) {
	if i >= 0 && i < 2 {
		g.inputs[i] = s
	}
}

func (g *triBufferGate) Evaluate() EvalResult {
	data, enable := g.inputs[0], g.inputs[1]
	switch enable {
	case state.One:
		g.outputs[0] = data
	case state.Zero:
		g.outputs[0] = state.HiZ
	default:
		g.outputs[0] = state.Unknown
	}
	return EvalResult{Outputs: g.outputs, Delay: g.delay}
}

func (g *triBufferGate) Reset() {
	g.inputs[0] = state.Unknown
	g.inputs[1] = state.Unknown
	g.outputs[0] = state.Unknown
}
