// Package simerr provides the single structured error type surfaced at the
// simulation's external boundaries. The core packages (state, gate, event,
// engine) never return errors from their hot paths -- per design the
// simulator is total over malformed netlists, out-of-range indices, and
// unrecognized gate kinds. simerr exists for the one path spec.md does
// allow to fail: decoding a netlist payload at the marshalling boundary.
package simerr

import "fmt"

// Kind classifies the reason a boundary operation failed.
type Kind string

const (
	// KindMalformedNetlist marks a netlist payload that failed to decode:
	// invalid JSON, or a gate or wire record with an empty id. Duplicate
	// ids and wires that reference a missing gate or port are not
	// detected.
	KindMalformedNetlist Kind = "MalformedNetlist"
)

// Error represents a failure at a package boundary. It carries the
// component and operation that raised it so logs and CLI output can point
// at the offending call without a stack trace.
type Error struct {
	Kind      Kind
	Component string
	Op        string
	Message   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s: %s.%s: %s", e.Kind, e.Component, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Message)
}

// New creates an Error with the given kind, component, operation, and a
// formatted message.
func New(kind Kind, component, op, format string, args ...any) *Error {
	return &Error{
		Kind:      kind,
		Component: component,
		Op:        op,
		Message:   fmt.Sprintf(format, args...),
	}
}

// Malformed is a convenience constructor for the netlist decode path.
func Malformed(op, format string, args ...any) *Error {
	return New(KindMalformedNetlist, "netlist", op, format, args...)
}

// IsMalformedNetlist reports whether err is a simerr.Error of kind
// MalformedNetlist.
func IsMalformedNetlist(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindMalformedNetlist
}
