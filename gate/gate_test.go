package gate

import (
	"testing"

	"github.com/metalogic/simcore/state"
)

func TestParseKindUnknownFallsBackToBuffer(t *testing.T) {
	if got := ParseKind("NOT_A_REAL_GATE"); got != KindBuffer {
		t.Errorf("ParseKind(garbage) = %v, want %v", got, KindBuffer)
	}
	for _, k := range []Kind{KindAnd, KindOr, KindNot, KindXor, KindNand, KindNor,
		KindXnor, KindBuffer, KindTriBuffer, KindToggle, KindClock, KindPulse, KindLED} {
		if got := ParseKind(string(k)); got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k, got, k)
		}
	}
}

func TestNewUnrecognizedKindConstructsBuffer(t *testing.T) {
	g := New("g1", Kind("totally bogus"), 0, 1)
	if g.Kind() != KindBuffer {
		t.Errorf("New with bogus kind produced Kind() = %v, want BUFFER", g.Kind())
	}
}

func TestArities(t *testing.T) {
	tests := []struct {
		kind       Kind
		wantInputs int
		wantOutput int
	}{
		{KindAnd, 2, 1},
		{KindOr, 2, 1},
		{KindXor, 2, 1},
		{KindNand, 2, 1},
		{KindNor, 2, 1},
		{KindXnor, 2, 1},
		{KindNot, 1, 1},
		{KindBuffer, 1, 1},
		{KindTriBuffer, 2, 1},
		{KindToggle, 0, 1},
		{KindClock, 0, 1},
		{KindPulse, 0, 1},
		{KindLED, 1, 0},
	}
	for _, tt := range tests {
		g := New("g", tt.kind, 0, 1)
		if g.InputCount() != tt.wantInputs {
			t.Errorf("%v InputCount() = %d, want %d", tt.kind, g.InputCount(), tt.wantInputs)
		}
		if g.OutputCount() != tt.wantOutput {
			t.Errorf("%v OutputCount() = %d, want %d", tt.kind, g.OutputCount(), tt.wantOutput)
		}
		if len(g.Inputs()) != tt.wantInputs {
			t.Errorf("%v len(Inputs()) = %d, want %d", tt.kind, len(g.Inputs()), tt.wantInputs)
		}
		if len(g.Outputs()) != tt.wantOutput {
			t.Errorf("%v len(Outputs()) = %d, want %d", tt.kind, len(g.Outputs()), tt.wantOutput)
		}
	}
}

func TestOverriddenInputCount(t *testing.T) {
	g := New("g", KindAnd, 4, 1)
	if g.InputCount() != 4 {
		t.Errorf("InputCount() = %d, want 4", g.InputCount())
	}
}

func TestInputsDefaultToUnknown(t *testing.T) {
	for _, k := range []Kind{KindAnd, KindOr, KindXor, KindNand, KindNor, KindXnor, KindNot, KindBuffer, KindTriBuffer, KindLED} {
		g := New("g", k, 0, 1)
		for i, s := range g.Inputs() {
			if s != state.Unknown {
				t.Errorf("%v input %d default = %v, want Unknown", k, i, s)
			}
		}
	}
}

func TestAndGateEvaluate(t *testing.T) {
	g := New("g", KindAnd, 2, 1)
	g.SetInput(0, state.One)
	g.SetInput(1, state.One)
	res := g.Evaluate()
	if res.Outputs[0] != state.One {
		t.Errorf("AND(One,One) = %v, want One", res.Outputs[0])
	}

	g.SetInput(1, state.Zero)
	res = g.Evaluate()
	if res.Outputs[0] != state.Zero {
		t.Errorf("AND(One,Zero) = %v, want Zero", res.Outputs[0])
	}
}

func TestNandNorXnorAreNegated(t *testing.T) {
	nand := New("g", KindNand, 2, 1)
	nand.SetInput(0, state.One)
	nand.SetInput(1, state.One)
	if got := nand.Evaluate().Outputs[0]; got != state.Zero {
		t.Errorf("NAND(One,One) = %v, want Zero", got)
	}

	nor := New("g", KindNor, 2, 1)
	nor.SetInput(0, state.Zero)
	nor.SetInput(1, state.Zero)
	if got := nor.Evaluate().Outputs[0]; got != state.One {
		t.Errorf("NOR(Zero,Zero) = %v, want One", got)
	}

	xnor := New("g", KindXnor, 2, 1)
	xnor.SetInput(0, state.One)
	xnor.SetInput(1, state.Zero)
	if got := xnor.Evaluate().Outputs[0]; got != state.Zero {
		t.Errorf("XNOR(One,Zero) = %v, want Zero", got)
	}
}

func TestNotGate(t *testing.T) {
	g := New("g", KindNot, 0, 1)
	g.SetInput(0, state.One)
	if got := g.Evaluate().Outputs[0]; got != state.Zero {
		t.Errorf("NOT(One) = %v, want Zero", got)
	}
}

func TestBufferPassesThrough(t *testing.T) {
	g := New("g", KindBuffer, 0, 1)
	g.SetInput(0, state.Conflict)
	if got := g.Evaluate().Outputs[0]; got != state.Conflict {
		t.Errorf("BUFFER(Conflict) = %v, want Conflict", got)
	}
}

func TestTriBuffer(t *testing.T) {
	g := New("g", KindTriBuffer, 0, 1)
	g.SetInput(0, state.One) // data
	g.SetInput(1, state.One) // enable
	if got := g.Evaluate().Outputs[0]; got != state.One {
		t.Errorf("TRI_BUFFER enable=One data=One -> %v, want One", got)
	}

	g.SetInput(1, state.Zero) // disable
	if got := g.Evaluate().Outputs[0]; got != state.HiZ {
		t.Errorf("TRI_BUFFER enable=Zero -> %v, want HiZ", got)
	}

	g.SetInput(1, state.Unknown)
	if got := g.Evaluate().Outputs[0]; got != state.Unknown {
		t.Errorf("TRI_BUFFER enable=Unknown -> %v, want Unknown", got)
	}
}

func TestToggleStartsZeroAndFlips(t *testing.T) {
	g := New("g", KindToggle, 0, 1)
	if got := g.Evaluate().Outputs[0]; got != state.Zero {
		t.Errorf("TOGGLE initial = %v, want Zero", got)
	}
	g.Toggle()
	if got := g.Evaluate().Outputs[0]; got != state.One {
		t.Errorf("TOGGLE after Toggle() = %v, want One", got)
	}
	g.Toggle()
	if got := g.Evaluate().Outputs[0]; got != state.Zero {
		t.Errorf("TOGGLE after second Toggle() = %v, want Zero", got)
	}
}

func TestClockDefaultPeriodAndTick(t *testing.T) {
	g := New("g", KindClock, 0, 1)
	cc, ok := g.(ClockControl)
	if !ok {
		t.Fatalf("CLOCK gate does not implement ClockControl")
	}
	if cc.Period() != defaultClockPeriod {
		t.Errorf("default period = %d, want %d", cc.Period(), defaultClockPeriod)
	}

	tests := []struct {
		time uint64
		want state.State
	}{
		{0, state.Zero},
		{5, state.Zero},
		{10, state.One},
		{15, state.One},
		{20, state.Zero},
	}
	for _, tt := range tests {
		level, _ := cc.Tick(tt.time)
		if level != tt.want {
			t.Errorf("Tick(%d) = %v, want %v", tt.time, level, tt.want)
		}
	}
}

func TestPulseEmitsOneWhileActive(t *testing.T) {
	g := New("g", KindPulse, 0, 1)
	pc := g.(PulseControl)
	if got := g.Evaluate().Outputs[0]; got != state.Zero {
		t.Errorf("PULSE initial = %v, want Zero", got)
	}
	pc.SetActive(true)
	if got := g.Evaluate().Outputs[0]; got != state.One {
		t.Errorf("PULSE active = %v, want One", got)
	}
	pc.SetActive(false)
	if got := g.Evaluate().Outputs[0]; got != state.Zero {
		t.Errorf("PULSE inactive = %v, want Zero", got)
	}
}

func TestLEDHasNoOutput(t *testing.T) {
	g := New("g", KindLED, 0, 1)
	g.SetInput(0, state.One)
	res := g.Evaluate()
	if len(res.Outputs) != 0 {
		t.Errorf("LED Evaluate().Outputs = %v, want empty", res.Outputs)
	}
	if g.Inputs()[0] != state.One {
		t.Errorf("LED did not retain its input for inspection")
	}
}

func TestSetInputOutOfRangeIsNoop(t *testing.T) {
	g := New("g", KindAnd, 2, 1)
	g.SetInput(-1, state.One)
	g.SetInput(99, state.One)
	for _, s := range g.Inputs() {
		if s != state.Unknown {
			t.Errorf("out-of-range SetInput mutated a valid input: %v", g.Inputs())
		}
	}
}

func TestResetRestoresQuiescentLevels(t *testing.T) {
	and := New("g", KindAnd, 2, 1)
	and.SetInput(0, state.One)
	and.SetInput(1, state.One)
	and.Evaluate()
	and.Reset()
	for _, s := range and.Inputs() {
		if s != state.Unknown {
			t.Errorf("AND input after Reset = %v, want Unknown", s)
		}
	}
	if and.Outputs()[0] != state.Unknown {
		t.Errorf("AND output after Reset = %v, want Unknown", and.Outputs()[0])
	}

	toggle := New("g", KindToggle, 0, 1)
	toggle.Toggle()
	toggle.Evaluate()
	toggle.Reset()
	if got := toggle.Evaluate().Outputs[0]; got != state.Zero {
		t.Errorf("TOGGLE after Reset = %v, want Zero", got)
	}
}

func TestDelayDefaults(t *testing.T) {
	combinational := []Kind{KindAnd, KindOr, KindXor, KindNand, KindNor, KindXnor, KindNot, KindBuffer, KindTriBuffer}
	for _, k := range combinational {
		g := New("g", k, 0, 1)
		if g.Delay() != 1 {
			t.Errorf("%v Delay() = %d, want 1", k, g.Delay())
		}
	}

	sourcesAndSinks := []Kind{KindToggle, KindClock, KindPulse, KindLED}
	for _, k := range sourcesAndSinks {
		g := New("g", k, 0, 1)
		if g.Delay() != 0 {
			t.Errorf("%v Delay() = %d, want 0", k, g.Delay())
		}
	}
}
