// Package main demonstrates end-to-end usage of the simulator, adapted
// from the teacher package's Example* demo style: each function prints
// a labeled walkthrough of one spec.md section 8 scenario using the
// engine API directly, with no HTTP or CLI involved.
package main

import (
	"fmt"

	"github.com/metalogic/simcore/config"
	"github.com/metalogic/simcore/engine"
	"github.com/metalogic/simcore/netlist"
)

func main() {
	ExampleHalfAdder()
	ExampleInverterChain()
	ExampleMultiDriveConflict()
	ExampleTriStateBus()
	ExampleClockTicking()
}

// ExampleHalfAdder builds A XOR B (sum) and A AND B (carry) from two
// TOGGLE inputs and steps until the outputs settle.
func ExampleHalfAdder() {
	fmt.Println("=== Half Adder ===")

	eng := engine.New(config.Default())
	eng.Initialize(netlist.Netlist{
		Gates: []netlist.GateRecord{
			{ID: "A", Type: "TOGGLE"},
			{ID: "B", Type: "TOGGLE"},
			{ID: "X", Type: "XOR", InputStates: []uint8{4, 4}},
			{ID: "C", Type: "AND", InputStates: []uint8{4, 4}},
		},
		Wires: []netlist.WireRecord{
			{ID: "a-x", SourceGateID: "A", TargetGateID: "X", TargetPortIndex: 0},
			{ID: "b-x", SourceGateID: "B", TargetGateID: "X", TargetPortIndex: 1},
			{ID: "a-c", SourceGateID: "A", TargetGateID: "C", TargetPortIndex: 0},
			{ID: "b-c", SourceGateID: "B", TargetGateID: "C", TargetPortIndex: 1},
		},
	})

	eng.ToggleInput("A")
	eng.ToggleInput("B")
	for i := 0; i < 10; i++ {
		eng.Step()
	}

	snap := eng.Snapshot()
	for _, g := range snap.Gates {
		if g.ID == "X" || g.ID == "C" {
			fmt.Printf("%s.out = %v\n", g.ID, g.OutputStates)
		}
	}
	fmt.Println()
}

// ExampleInverterChain chains two NOT gates and shows the level settle
// after the TOGGLE source is driven high.
func ExampleInverterChain() {
	fmt.Println("=== Inverter Chain ===")

	eng := engine.New(config.Default())
	eng.Initialize(netlist.Netlist{
		Gates: []netlist.GateRecord{
			{ID: "T", Type: "TOGGLE", OutputStates: []uint8{1}},
			{ID: "N1", Type: "NOT", InputStates: []uint8{4}},
			{ID: "N2", Type: "NOT", InputStates: []uint8{4}},
		},
		Wires: []netlist.WireRecord{
			{ID: "t-n1", SourceGateID: "T", TargetGateID: "N1", TargetPortIndex: 0},
			{ID: "n1-n2", SourceGateID: "N1", TargetGateID: "N2", TargetPortIndex: 0},
		},
	})

	for i := 0; i < 3; i++ {
		eng.Step()
	}

	snap := eng.Snapshot()
	for _, g := range snap.Gates {
		if g.ID == "N2" {
			fmt.Printf("N2.out = %v (expect One)\n", g.OutputStates)
		}
	}
	fmt.Println()
}

// ExampleMultiDriveConflict drives one LED input from two TOGGLE sources
// at opposite levels, producing Conflict per spec.md section 4.1.
func ExampleMultiDriveConflict() {
	fmt.Println("=== Multi-Drive Conflict ===")

	eng := engine.New(config.Default())
	eng.Initialize(netlist.Netlist{
		Gates: []netlist.GateRecord{
			{ID: "T1", Type: "TOGGLE", OutputStates: []uint8{1}},
			{ID: "T2", Type: "TOGGLE"},
			{ID: "L", Type: "LED", InputStates: []uint8{4}},
		},
		Wires: []netlist.WireRecord{
			{ID: "t1-l", SourceGateID: "T1", TargetGateID: "L", TargetPortIndex: 0},
			{ID: "t2-l", SourceGateID: "T2", TargetGateID: "L", TargetPortIndex: 0},
		},
	})

	for i := 0; i < 5; i++ {
		eng.Step()
	}

	snap := eng.Snapshot()
	for _, g := range snap.Gates {
		if g.ID == "L" {
			fmt.Printf("L.in = %v (expect Conflict=3)\n", g.InputStates)
		}
	}
	fmt.Println()
}

// ExampleTriStateBus shows a TRI_BUFFER reading HiZ when its enable
// input is low and passing its data input through once enabled.
func ExampleTriStateBus() {
	fmt.Println("=== Tri-State Bus ===")

	eng := engine.New(config.Default())
	eng.Initialize(netlist.Netlist{
		Gates: []netlist.GateRecord{
			{ID: "D", Type: "TOGGLE", OutputStates: []uint8{1}},
			{ID: "E", Type: "TOGGLE"},
			{ID: "TB", Type: "TRI_BUFFER", InputStates: []uint8{4, 4}},
		},
		Wires: []netlist.WireRecord{
			{ID: "d-tb", SourceGateID: "D", TargetGateID: "TB", TargetPortIndex: 0},
			{ID: "e-tb", SourceGateID: "E", TargetGateID: "TB", TargetPortIndex: 1},
		},
	})

	for i := 0; i < 3; i++ {
		eng.Step()
	}
	fmt.Printf("before enable: TB.out = %v (expect HiZ=2)\n", eng.Snapshot().Gates[2].OutputStates)

	eng.ToggleInput("E")
	for i := 0; i < 3; i++ {
		eng.Step()
	}
	fmt.Printf("after enable: TB.out = %v (expect One=1)\n", eng.Snapshot().Gates[2].OutputStates)
	fmt.Println()
}

// ExampleClockTicking steps a bare CLOCK gate past t=15, far enough to
// observe its level go from Zero to One at the first half-period boundary.
func ExampleClockTicking() {
	fmt.Println("=== Clock Ticking ===")

	eng := engine.New(config.Default())
	eng.Initialize(netlist.Netlist{
		Gates: []netlist.GateRecord{{ID: "CLK", Type: "CLOCK"}},
	})

	for _, target := range []uint64{0, 5, 10, 15} {
		for eng.CurrentTime() < target {
			eng.Step()
		}
		eng.Step()
		fmt.Printf("t=%d CLK.out = %v\n", target, eng.Snapshot().Gates[0].OutputStates)
	}
	fmt.Println()
}
