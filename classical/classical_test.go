package classical

import (
	"testing"

	"github.com/metalogic/simcore/state"
)

func TestAndOrXor(t *testing.T) {
	if !And(true, true, true) {
		t.Error("And(true,true,true) = false, want true")
	}
	if And(true, false) {
		t.Error("And(true,false) = true, want false")
	}
	if And() {
		t.Error("And() = true, want false")
	}
	if !Or(false, false, true) {
		t.Error("Or(false,false,true) = false, want true")
	}
	if !Xor(true, false) || Xor(true, true) {
		t.Error("Xor truth table mismatch")
	}
}

func TestDeMorganAndDistributiveLaws(t *testing.T) {
	for _, a := range []bool{true, false} {
		for _, b := range []bool{true, false} {
			if !DeMorganLaw(a, b) {
				t.Errorf("DeMorganLaw(%v,%v) = false", a, b)
			}
			for _, c := range []bool{true, false} {
				if !DistributiveLaw(a, b, c) {
					t.Errorf("DistributiveLaw(%v,%v,%v) = false", a, b, c)
				}
			}
		}
	}
}

func TestBoolVectorOps(t *testing.T) {
	v1 := NewBoolVector(true, false, true)
	v2 := NewBoolVector(false, true, true)

	and, err := v1.And(v2)
	if err != nil {
		t.Fatalf("And: %v", err)
	}
	if and.String() != "[F, F, T]" {
		t.Errorf("And = %s, want [F, F, T]", and)
	}

	if _, err := v1.And(NewBoolVector(true)); err == nil {
		t.Error("And with mismatched length should error")
	}

	if v1.Count() != 2 {
		t.Errorf("Count() = %d, want 2", v1.Count())
	}
	if v1.AllTrue() {
		t.Error("AllTrue() = true, want false")
	}
	if !v1.AnyTrue() {
		t.Error("AnyTrue() = false, want true")
	}
}

func TestTautologyContradictionContingency(t *testing.T) {
	excludedMiddle := func(inputs ...bool) bool { return Or(inputs[0], Not(inputs[0])) }
	if !Tautology([]string{"A"}, excludedMiddle) {
		t.Error("A or not A should be a tautology")
	}

	contra := func(inputs ...bool) bool { return And(inputs[0], Not(inputs[0])) }
	if !Contradiction([]string{"A"}, contra) {
		t.Error("A and not A should be a contradiction")
	}

	if !Contingency([]string{"A", "B"}, And) {
		t.Error("A and B should be contingent")
	}
}

func TestCrossCheckAgreesWithGatePackage(t *testing.T) {
	match, ok := CrossCheck("AND", []state.State{state.One, state.One}, state.One)
	if !ok || !match {
		t.Errorf("CrossCheck(AND, [One,One], One) = (%v,%v), want (true,true)", match, ok)
	}

	match, ok = CrossCheck("XOR", []state.State{state.One, state.Zero}, state.Zero)
	if !ok || match {
		t.Errorf("CrossCheck(XOR, [One,Zero], Zero) = (%v,%v), want (false,true)", match, ok)
	}
}

func TestCrossCheckRejectsUnknownKindAndNonBinaryState(t *testing.T) {
	if _, ok := CrossCheck("TOGGLE", []state.State{state.One}, state.One); ok {
		t.Error("CrossCheck(TOGGLE, ...) ok = true, want false (no boolean reference)")
	}
	if _, ok := CrossCheck("AND", []state.State{state.HiZ, state.One}, state.Unknown); ok {
		t.Error("CrossCheck with a HiZ input ok = true, want false")
	}
}
