// Package netlist defines the wire-format JSON records the engine is
// initialized from and snapshotted into, matching the shape
// original_source's lib.rs exposed across its wasm-bindgen boundary
// (GateState/WireState/SimulationSnapshot), translated from JS interop
// structs into Go's encoding/json. No third-party JSON library appears
// anywhere in the example corpus, so this boundary stays on the
// standard library -- see DESIGN.md.
package netlist

import (
	"encoding/json"

	"github.com/metalogic/simcore/simerr"
)

// GateRecord is one gate's wire-format description: its id, primitive
// type, and current input/output levels encoded as state.State bytes.
type GateRecord struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	InputStates  []uint8 `json:"input_states"`
	OutputStates []uint8 `json:"output_states"`
}

// WireRecord is one wire's wire-format description: its id, current
// level, and the gate ports it connects.
type WireRecord struct {
	ID               string `json:"id"`
	State            uint8  `json:"state"`
	SourceGateID     string `json:"source_gate_id"`
	SourcePortIndex  uint32 `json:"source_port_index"`
	TargetGateID     string `json:"target_gate_id"`
	TargetPortIndex  uint32 `json:"target_port_index"`
}

// Snapshot is the full wire-format view of a simulation at a point in
// time: the current tick plus every gate and wire's current state.
type Snapshot struct {
	Time  uint64       `json:"time"`
	Gates []GateRecord `json:"gates"`
	Wires []WireRecord `json:"wires"`
}

// Netlist is the wire-format input to Engine.Initialize: the gates and
// wires to construct, without a time (a freshly initialized simulation
// always starts at tick 0).
type Netlist struct {
	Gates []GateRecord `json:"gates"`
	Wires []WireRecord `json:"wires"`
}

// DecodeNetlist parses a JSON netlist payload, reporting a
// simerr.KindMalformedNetlist error on any decode failure so callers at
// the API/CLI boundary can distinguish "bad input" from "internal
// error" (spec.md section 7).
func DecodeNetlist(data []byte) (Netlist, error) {
	var n Netlist
	if err := json.Unmarshal(data, &n); err != nil {
		return Netlist{}, simerr.Malformed("DecodeNetlist", "invalid netlist JSON: %s", err)
	}
	for _, g := range n.Gates {
		if g.ID == "" {
			return Netlist{}, simerr.Malformed("DecodeNetlist", "gate record missing id")
		}
	}
	for _, w := range n.Wires {
		if w.ID == "" {
			return Netlist{}, simerr.Malformed("DecodeNetlist", "wire record missing id")
		}
	}
	return n, nil
}

// EncodeSnapshot serializes a Snapshot to its wire-format JSON bytes.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, simerr.Malformed("EncodeSnapshot", "failed to serialize snapshot: %s", err)
	}
	return data, nil
}

// DecodeSnapshot parses a JSON snapshot payload, e.g. one previously
// produced by EncodeSnapshot and round-tripped through storage or a
// network call.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, simerr.Malformed("DecodeSnapshot", "invalid snapshot JSON: %s", err)
	}
	return s, nil
}
