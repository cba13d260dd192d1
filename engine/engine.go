// Package engine implements the simulator's dequeue/evaluate/propagate
// loop: it owns every gate and wire, drains due events off a priority
// queue, diffs gate outputs, and fans changes out across the wiring
// to schedule downstream work. It is grounded directly on
// original_source's simulation::engine::SimulationEngine, translated
// from Rust's HashMap-owned trait objects into Go maps of the gate.Gate
// interface.
package engine

import (
	"sort"

	"github.com/metalogic/simcore/config"
	"github.com/metalogic/simcore/event"
	"github.com/metalogic/simcore/gate"
	"github.com/metalogic/simcore/netlist"
	"github.com/metalogic/simcore/state"
)

// wire is the engine's internal representation of one netlist wire:
// its current state plus the gate ports it connects.
type wire struct {
	id               string
	state            state.State
	sourceGateID     string
	sourcePortIndex  uint32
	targetGateID     string
	targetPortIndex  uint32
}

// portKey identifies a single input or output port for the fan-in/
// fan-out indices built at Initialize.
type portKey struct {
	gateID string
	port   uint32
}

// Engine owns every gate and wire in a netlist and drives simulated
// time forward one tick per Step call.
type Engine struct {
	cfg         config.Config
	gates       map[string]gate.Gate
	gateOrder   []string // sorted by id; resolves spec.md section 9's iteration-order open item
	wires       map[string]*wire
	outgoing    map[portKey][]string // (source gate, source port) -> outgoing wire ids
	incoming    map[portKey][]string // (target gate, target port) -> incoming wire ids
	queue       *event.Queue
	currentTime uint64
	running     bool
}

// New constructs an empty engine configured by cfg.
func New(cfg config.Config) *Engine {
	return &Engine{
		cfg:   cfg,
		gates: make(map[string]gate.Gate),
		wires: make(map[string]*wire),
		queue: event.New(),
	}
}

// Initialize discards any existing netlist and installs gates and
// wires, then seeds a full-gate evaluation for every gate at time 0.
// Gates are constructed in netlist order; their seed events are pushed
// in ascending id order so that equal-time seed events drain in a
// stable, reproducible sequence across runs
// (spec.md section 9 leaves the iteration order unspecified but
// deterministic; sorting by id is the chosen resolution).
func (e *Engine) Initialize(n netlist.Netlist) {
	e.gates = make(map[string]gate.Gate, len(n.Gates))
	e.wires = make(map[string]*wire, len(n.Wires))
	e.outgoing = make(map[portKey][]string)
	e.incoming = make(map[portKey][]string)
	e.queue.Clear()
	e.currentTime = 0

	for _, gr := range n.Gates {
		inputCount := 0
		if len(gr.InputStates) > 0 {
			inputCount = len(gr.InputStates)
		}
		g := gate.New(gr.ID, gate.ParseKind(gr.Type), inputCount, 1)
		for i, b := range gr.InputStates {
			g.SetInput(i, state.FromByte(b))
		}
		applyInitialOutput(g, gr.OutputStates)
		if cc, ok := g.(gate.ClockControl); ok {
			cc.SetPeriod(e.cfg.ClockPeriod)
		}
		e.gates[gr.ID] = g
	}

	for _, wr := range n.Wires {
		e.wires[wr.ID] = &wire{
			id:              wr.ID,
			state:           state.FromByte(wr.State),
			sourceGateID:    wr.SourceGateID,
			sourcePortIndex: wr.SourcePortIndex,
			targetGateID:    wr.TargetGateID,
			targetPortIndex: wr.TargetPortIndex,
		}
		src := portKey{wr.SourceGateID, wr.SourcePortIndex}
		e.outgoing[src] = append(e.outgoing[src], wr.ID)
		dst := portKey{wr.TargetGateID, wr.TargetPortIndex}
		e.incoming[dst] = append(e.incoming[dst], wr.ID)
	}

	e.gateOrder = make([]string, 0, len(e.gates))
	for id := range e.gates {
		e.gateOrder = append(e.gateOrder, id)
	}
	sort.Strings(e.gateOrder)

	for _, id := range e.gateOrder {
		e.scheduleGateEvaluation(id, 0)
	}
}

// applyInitialOutput honors an explicit initial level for TOGGLE gates
// supplied via a netlist's output_states; every other kind computes its
// own initial output on its first Evaluate.
func applyInitialOutput(g gate.Gate, outputStates []uint8) {
	if len(outputStates) == 0 {
		return
	}
	if t, ok := g.(gate.Toggler); ok {
		t.SetLevel(state.FromByte(outputStates[0]))
	}
}

func (e *Engine) scheduleGateEvaluation(gateID string, time uint64) {
	e.queue.Push(time, gateID, event.AllPorts, state.Unknown)
}

// tickClocks drives every CLOCK-kind gate's level for the tick that is
// about to run, scheduling a re-evaluation when the level changes.
// This is SPEC_FULL.md's resolution of spec.md section 9's "CLOCK
// animation" open item: the Rust source defines ClockGate::tick but
// the engine there never calls it, so a CLOCK never advances past its
// reset value. Step below calls this once per tick before draining
// events.
func (e *Engine) tickClocks() {
	for _, id := range e.gateOrder {
		cc, ok := e.gates[id].(gate.ClockControl)
		if !ok {
			continue
		}
		if _, changed := cc.Tick(e.currentTime); changed {
			e.scheduleGateEvaluation(id, e.currentTime)
		}
	}
}

// Step executes one simulator tick: it advances CLOCK sources for the
// current time, then drains every due event (bounded by
// cfg.MaxEvents), propagating any output change across the wiring,
// and finally advances current_time by at least 1. It returns the
// number of events drained from the queue this tick, for callers that
// want to feed a telemetry.Metrics.EventsProcessed counter.
func (e *Engine) Step() uint64 {
	e.tickClocks()

	var processed uint64
	for !e.queue.IsEmpty() && processed < e.cfg.MaxEvents {
		next, ok := e.queue.Peek()
		if !ok || next.Time > e.currentTime {
			break
		}
		ev, _ := e.queue.Pop()
		processed++

		g, ok := e.gates[ev.GateID]
		if !ok {
			continue
		}

		previous := append([]state.State(nil), g.Outputs()...)
		result := g.Evaluate()

		for i, newState := range result.Outputs {
			var old state.State
			if i < len(previous) {
				old = previous[i]
			} else {
				old = state.Unknown
			}
			if old == newState {
				continue
			}
			for _, wireID := range e.outgoing[portKey{ev.GateID, uint32(i)}] {
				e.propagateWireState(wireID, newState)
			}
		}
	}

	if next, ok := e.queue.Peek(); ok && next.Time > e.currentTime {
		e.currentTime = next.Time
	}
	e.currentTime += e.cfg.ScheduleDelta

	return processed
}

// propagateWireState implements spec.md section 4.4's propagation
// rule: change-cancel if the wire's state didn't actually change,
// otherwise resolve every wire driving the target port and schedule
// the target gate for re-evaluation one tick later.
func (e *Engine) propagateWireState(wireID string, newState state.State) {
	w, ok := e.wires[wireID]
	if !ok {
		return
	}
	if w.state == newState {
		return
	}
	w.state = newState

	target := portKey{w.targetGateID, w.targetPortIndex}
	drivers := make([]state.State, 0, len(e.incoming[target]))
	for _, id := range e.incoming[target] {
		drivers = append(drivers, e.wires[id].state)
	}
	resolved := state.Resolve(drivers...)

	if g, ok := e.gates[w.targetGateID]; ok {
		g.SetInput(int(w.targetPortIndex), resolved)
	}
	e.scheduleGateEvaluation(w.targetGateID, e.currentTime+e.cfg.ScheduleDelta)
}

// ToggleInput flips the named gate's interactive state (a no-op for
// non-interactive kinds) and schedules it for re-evaluation this tick.
func (e *Engine) ToggleInput(gateID string) {
	if g, ok := e.gates[gateID]; ok {
		g.Toggle()
	}
	e.scheduleGateEvaluation(gateID, e.currentTime)
}

// SetRunning sets the advisory running flag a host uses to decide
// whether to keep calling Step on its animation cadence.
func (e *Engine) SetRunning(running bool) { e.running = running }

// IsRunning reports the advisory running flag.
func (e *Engine) IsRunning() bool { return e.running }

// CurrentTime returns the current simulated tick.
func (e *Engine) CurrentTime() uint64 { return e.currentTime }

// Reset returns every gate and wire to its quiescent state and
// re-seeds time-0 evaluations, without discarding the netlist itself.
func (e *Engine) Reset() {
	e.currentTime = 0
	e.queue.Clear()

	for _, g := range e.gates {
		g.Reset()
	}
	for _, w := range e.wires {
		w.state = state.Unknown
	}

	for _, id := range e.gateOrder {
		e.scheduleGateEvaluation(id, 0)
	}
}

// Snapshot produces a deep, read-only copy of the engine's current
// time, gate I/O, and wire states, suitable for transport across a
// process boundary.
func (e *Engine) Snapshot() netlist.Snapshot {
	gates := make([]netlist.GateRecord, 0, len(e.gates))
	for _, id := range e.gateOrder {
		g := e.gates[id]
		gates = append(gates, netlist.GateRecord{
			ID:           g.ID(),
			Type:         string(g.Kind()),
			InputStates:  statesToBytes(g.Inputs()),
			OutputStates: statesToBytes(g.Outputs()),
		})
	}

	wireIDs := make([]string, 0, len(e.wires))
	for id := range e.wires {
		wireIDs = append(wireIDs, id)
	}
	sort.Strings(wireIDs)

	wires := make([]netlist.WireRecord, 0, len(wireIDs))
	for _, id := range wireIDs {
		w := e.wires[id]
		wires = append(wires, netlist.WireRecord{
			ID:              w.id,
			State:           w.state.Byte(),
			SourceGateID:    w.sourceGateID,
			SourcePortIndex: w.sourcePortIndex,
			TargetGateID:    w.targetGateID,
			TargetPortIndex: w.targetPortIndex,
		})
	}

	return netlist.Snapshot{Time: e.currentTime, Gates: gates, Wires: wires}
}

// GateCount reports how many gates the currently initialized netlist
// holds, for telemetry's active-gates gauge.
func (e *Engine) GateCount() int { return len(e.gates) }

func statesToBytes(ss []state.State) []uint8 {
	out := make([]uint8, len(ss))
	for i, s := range ss {
		out[i] = s.Byte()
	}
	return out
}
