// Package classical provides a pure, two-valued boolean algebra used as a
// golden-model cross-check for the simulator's 5-valued gate.Gate
// evaluations. Any purely combinational netlist that never drives a wire
// into HiZ, Conflict, or Unknown has a two-valued truth table that must
// agree with these functions; CrossCheck in crosscheck.go is the bridge
// between the two representations.
//
// Basic usage:
//
//	result := classical.And(true, false, true) // false
//	vector := classical.NewBoolVector(true, false, true)
package classical

import (
	"fmt"
	"unsafe"
)

// vectorLengthError reports a BoolVector operation applied to operands of
// mismatched length.
type vectorLengthError struct {
	op string
}

func (e *vectorLengthError) Error() string {
	return fmt.Sprintf("classical: %s: vector length mismatch", e.op)
}

func errVectorLengthMismatch(op string) error {
	return &vectorLengthError{op: op}
}

// And performs logical AND operation on multiple boolean values.
// It returns true only if all inputs are true. If no inputs are provided,
// it returns false.
func And(inputs ...bool) bool {
	for _, v := range inputs {
		if !v {
			return false
		}
	}
	return len(inputs) > 0
}

// Or performs logical OR operation on multiple boolean values.
// It returns true if at least one input is true. If no inputs are provided,
// it returns false.
func Or(inputs ...bool) bool {
	for _, v := range inputs {
		if v {
			return true
		}
	}
	return false
}

// Xor performs exclusive OR operation on multiple boolean values.
// It returns true if an odd number of inputs are true.
func Xor(inputs ...bool) bool {
	result := false
	for _, v := range inputs {
		if v {
			result = !result
		}
	}
	return result
}

// Not performs logical NOT operation on a single boolean value.
func Not(input bool) bool {
	return !input
}

// Nand performs logical NAND (NOT AND) operation on multiple boolean values.
func Nand(inputs ...bool) bool {
	return !And(inputs...)
}

// Nor performs logical NOR (NOT OR) operation on multiple boolean values.
func Nor(inputs ...bool) bool {
	return !Or(inputs...)
}

// Xnor performs logical XNOR (exclusive NOR) operation on multiple boolean
// values. It returns true if an even number of inputs are true.
func Xnor(inputs ...bool) bool {
	return !Xor(inputs...)
}

// Implies performs logical implication (A -> B), equivalent to (!A || B).
func Implies(a, b bool) bool {
	return !a || b
}

// Iff performs logical biconditional (A <-> B): true when both inputs agree.
func Iff(a, b bool) bool {
	return a == b
}

// DeMorganLaw verifies De Morgan's law: !(A && B) == (!A || !B).
func DeMorganLaw(a, b bool) bool {
	return Not(And(a, b)) == Or(Not(a), Not(b))
}

// DistributiveLaw verifies A && (B || C) == (A && B) || (A && C).
func DistributiveLaw(a, b, c bool) bool {
	return And(a, Or(b, c)) == Or(And(a, b), And(a, c))
}

// BoolVector is a vector of boolean values with element-wise operations.
type BoolVector []bool

// NewBoolVector creates a new boolean vector from the given values.
func NewBoolVector(values ...bool) BoolVector {
	vec := make(BoolVector, len(values))
	copy(vec, values)
	return vec
}

// And performs element-wise AND with another vector of the same length.
func (bv BoolVector) And(other BoolVector) (BoolVector, error) {
	if len(bv) != len(other) {
		return nil, errVectorLengthMismatch("BoolVector.And")
	}
	result := make(BoolVector, len(bv))
	for i := range bv {
		result[i] = bv[i] && other[i]
	}
	return result, nil
}

// Or performs element-wise OR with another vector of the same length.
func (bv BoolVector) Or(other BoolVector) (BoolVector, error) {
	if len(bv) != len(other) {
		return nil, errVectorLengthMismatch("BoolVector.Or")
	}
	result := make(BoolVector, len(bv))
	for i := range bv {
		result[i] = bv[i] || other[i]
	}
	return result, nil
}

// Xor performs element-wise XOR with another vector of the same length.
func (bv BoolVector) Xor(other BoolVector) (BoolVector, error) {
	if len(bv) != len(other) {
		return nil, errVectorLengthMismatch("BoolVector.Xor")
	}
	result := make(BoolVector, len(bv))
	for i := range bv {
		result[i] = bv[i] != other[i]
	}
	return result, nil
}

// Not returns a new vector with every value inverted.
func (bv BoolVector) Not() BoolVector {
	result := make(BoolVector, len(bv))
	for i := range bv {
		result[i] = !bv[i]
	}
	return result
}

// Count returns the number of true values in the vector.
func (bv BoolVector) Count() int {
	count := 0
	for _, v := range bv {
		if v {
			count++
		}
	}
	return count
}

// AllTrue returns true if every value in the vector is true. An empty
// vector returns false.
func (bv BoolVector) AllTrue() bool {
	for _, v := range bv {
		if !v {
			return false
		}
	}
	return len(bv) > 0
}

// AnyTrue returns true if any value in the vector is true.
func (bv BoolVector) AnyTrue() bool {
	for _, v := range bv {
		if v {
			return true
		}
	}
	return false
}

// String renders the vector as e.g. "[T, F, T]".
func (bv BoolVector) String() string {
	if len(bv) == 0 {
		return "[]"
	}
	size := 1 + len(bv)*4 - 2
	result := make([]byte, 0, size)
	result = append(result, '[')
	for i, v := range bv {
		if i > 0 {
			result = append(result, ',', ' ')
		}
		if v {
			result = append(result, 'T')
		} else {
			result = append(result, 'F')
		}
	}
	result = append(result, ']')
	return *(*string)(unsafe.Pointer(&result))
}

// Tautology reports whether fn returns true for every combination of the
// named variables.
func Tautology(variables []string, fn func(...bool) bool) bool {
	n := len(variables)
	for i := 0; i < (1 << n); i++ {
		inputs := make([]bool, n)
		for j := 0; j < n; j++ {
			inputs[j] = (i>>j)&1 == 1
		}
		if !fn(inputs...) {
			return false
		}
	}
	return true
}

// Contradiction reports whether fn returns false for every combination of
// the named variables.
func Contradiction(variables []string, fn func(...bool) bool) bool {
	n := len(variables)
	for i := 0; i < (1 << n); i++ {
		inputs := make([]bool, n)
		for j := 0; j < n; j++ {
			inputs[j] = (i>>j)&1 == 1
		}
		if fn(inputs...) {
			return false
		}
	}
	return true
}

// Contingency reports whether fn is neither a tautology nor a contradiction
// over the named variables.
func Contingency(variables []string, fn func(...bool) bool) bool {
	n := len(variables)
	hasTrue, hasFalse := false, false
	for i := 0; i < (1 << n); i++ {
		inputs := make([]bool, n)
		for j := 0; j < n; j++ {
			inputs[j] = (i>>j)&1 == 1
		}
		if fn(inputs...) {
			hasTrue = true
		} else {
			hasFalse = true
		}
		if hasTrue && hasFalse {
			return true
		}
	}
	return false
}
