package gate

import "github.com/metalogic/simcore/state"

// defaultClockPeriod is the CLOCK gate's period in ticks until SetPeriod
// overrides it. It matches spec.md section 4.2's default and is
// the same constant config.Config.ClockPeriod can override for the whole
// engine at construction time -- see package config.
const defaultClockPeriod uint64 = 10

// toggleGate is a zero-input, one-output interactive source. It emits its
// internal state (initially Zero) and flips between Zero and One on
// Toggle.
type toggleGate struct {
	id      string
	outputs []state.State
	level   state.State
}

func newToggleGate(id string) *toggleGate {
	return &toggleGate{id: id, outputs: []state.State{state.Zero}, level: state.Zero}
}

func (g *toggleGate) ID() string             { return g.id }
func (g *toggleGate) Kind() Kind             { return KindToggle }
func (g *toggleGate) InputCount() int        { return 0 }
func (g *toggleGate) OutputCount() int       { return 1 }
func (g *toggleGate) Inputs() []state.State  { return nil }
func (g *toggleGate) Outputs() []state.State { return g.outputs }
func (g *toggleGate) Delay() uint64          { return 0 }
func (g *toggleGate) SetInput(int, state.State) {}

func (g *toggleGate) Evaluate() EvalResult {
	g.outputs[0] = g.level
	return EvalResult{Outputs: g.outputs, Delay: 0}
}

func (g *toggleGate) Reset() {
	g.level = state.Zero
	g.outputs[0] = state.Zero
}

func (g *toggleGate) Toggle() {
	if g.level == state.Zero {
		g.level = state.One
	} else {
		g.level = state.Zero
	}
}

// SetLevel forces the toggle to a specific level, bypassing the
// Zero/One flip of Toggle. Used by netlist construction to honor an
// initial output_states value.
func (g *toggleGate) SetLevel(s state.State) {
	g.level = s
	g.outputs[0] = s
}

// clockGate is a zero-input, one-output source that oscillates between
// Zero and One with the given period. Per SPEC_FULL.md section 4, the
// engine's step loop drives Tick once per simulated tick so the clock
// actually animates; Evaluate alone only re-emits the last level Tick
// computed.
type clockGate struct {
	id      string
	outputs []state.State
	period  uint64
	level   state.State
}

func newClockGate(id string) *clockGate {
	return &clockGate{id: id, outputs: []state.State{state.Zero}, period: defaultClockPeriod, level: state.Zero}
}

func (g *clockGate) ID() string             { return g.id }
func (g *clockGate) Kind() Kind             { return KindClock }
func (g *clockGate) InputCount() int        { return 0 }
func (g *clockGate) OutputCount() int       { return 1 }
func (g *clockGate) Inputs() []state.State  { return nil }
func (g *clockGate) Outputs() []state.State { return g.outputs }
func (g *clockGate) Delay() uint64          { return 0 }
func (g *clockGate) SetInput(int, state.State) {}
func (g *clockGate) Toggle()                {}

func (g *clockGate) Evaluate() EvalResult {
	g.outputs[0] = g.level
	return EvalResult{Outputs: g.outputs, Delay: 0}
}

func (g *clockGate) Reset() {
	g.level = state.Zero
	g.outputs[0] = state.Zero
}

// Period returns the gate's oscillation period in ticks.
func (g *clockGate) Period() uint64 { return g.period }

// SetPeriod overrides the default period (10) at construction time.
func (g *clockGate) SetPeriod(p uint64) {
	if p > 0 {
		g.period = p
	}
}

// Tick computes the level the clock should be at for the given simulated
// time -- Zero while (time/period) is even, One while odd -- and returns
// it along with whether the level changed from before the call.
func (g *clockGate) Tick(time uint64) (level state.State, changed bool) {
	next := state.Zero
	if (time/g.period)%2 != 0 {
		next = state.One
	}
	changed = next != g.level
	g.level = next
	return next, changed
}

// pulseGate is a momentary-high button: it emits One while Active is held
// true by the host, Zero otherwise.
type pulseGate struct {
	id      string
	outputs []state.State
	active  bool
}

func newPulseGate(id string) *pulseGate {
	return &pulseGate{id: id, outputs: []state.State{state.Zero}}
}

func (g *pulseGate) ID() string             { return g.id }
func (g *pulseGate) Kind() Kind             { return KindPulse }
func (g *pulseGate) InputCount() int        { return 0 }
func (g *pulseGate) OutputCount() int       { return 1 }
func (g *pulseGate) Inputs() []state.State  { return nil }
func (g *pulseGate) Outputs() []state.State { return g.outputs }
func (g *pulseGate) Delay() uint64          { return 0 }
func (g *pulseGate) SetInput(int, state.State) {}
func (g *pulseGate) Toggle()                {}

func (g *pulseGate) Evaluate() EvalResult {
	if g.active {
		g.outputs[0] = state.One
	} else {
		g.outputs[0] = state.Zero
	}
	return EvalResult{Outputs: g.outputs, Delay: 0}
}

func (g *pulseGate) Reset() {
	g.active = false
	g.outputs[0] = state.Zero
}

// SetActive sets whether the pulse is currently held down.
func (g *pulseGate) SetActive(active bool) { g.active = active }

// Active reports whether the pulse is currently held down.
func (g *pulseGate) Active() bool { return g.active }

// ledGate is a one-input, zero-output sink: it stores its last input for
// inspection via Inputs/Outputs snapshots but produces no output signal.
type ledGate struct {
	id     string
	inputs []state.State
}

func newLEDGate(id string, inputCount int) *ledGate {
	if inputCount <= 0 {
		inputCount = 1
	}
	return &ledGate{id: id, inputs: unknownSlice(inputCount)}
}

func (g *ledGate) ID() string             { return g.id }
func (g *ledGate) Kind() Kind             { return KindLED }
func (g *ledGate) InputCount() int        { return len(g.inputs) }
func (g *ledGate) OutputCount() int       { return 0 }
func (g *ledGate) Inputs() []state.State  { return g.inputs }
func (g *ledGate) Outputs() []state.State { return nil }
func (g *ledGate) Delay() uint64          { return 0 }
func (g *ledGate) Toggle()                {}

func (g *ledGate) SetInput(i int, s state.State) {
	if i >= 0 && i < len(g.inputs) {
		g.inputs[i] = s
	}
}

func (g *ledGate) Evaluate() EvalResult {
	return EvalResult{Outputs: nil, Delay: 0}
}

func (g *ledGate) Reset() {
	for i := range g.inputs {
		g.inputs[i] = state.Unknown
	}
}

// Toggler is implemented by gates whose Toggle call actually changes
// state (currently only TOGGLE). The engine does not need this interface
// directly -- Gate.Toggle is always safe to call -- but netlist
// construction uses it to honor an initial output_states value supplied
// for a TOGGLE gate.
type Toggler interface {
	SetLevel(state.State)
}

// ClockControl is implemented by CLOCK gates. The engine type-asserts to
// this to drive Tick once per simulated tick and to let netlist
// construction set a non-default period.
type ClockControl interface {
	Tick(time uint64) (level state.State, changed bool)
	SetPeriod(p uint64)
	Period() uint64
}

// PulseControl is implemented by PULSE gates, letting a host set/query
// whether the button is currently held.
type PulseControl interface {
	SetActive(active bool)
	Active() bool
}
