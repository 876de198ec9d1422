// Package dice implements dice-notation parsing and roll generation
// for rollctl.
package dice

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedToken indicates an input token does not match the
// <count>?d<sides> grammar.
var ErrMalformedToken = errors.New("malformed dice token")

// ErrInvalidDescriptor indicates a token matched the grammar but
// violates the descriptor bounds (count >= 1, sides >= 2).
var ErrInvalidDescriptor = errors.New("invalid dice descriptor")

// Descriptor describes a group of identical dice: how many to roll and
// how many faces each die has. Two descriptors with equal fields are
// interchangeable.
type Descriptor struct {
	Count int
	Sides int
}

// New validates the descriptor bounds and returns the descriptor.
//
// A die needs at least two faces to be meaningful, and at least one
// roll must be requested. Violations return ErrInvalidDescriptor
// rather than clamping.
func New(count, sides int) (Descriptor, error) {
	if count < 1 {
		return Descriptor{}, fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidDescriptor, count)
	}
	if sides < 2 {
		return Descriptor{}, fmt.Errorf("%w: sides must be at least 2, got %d", ErrInvalidDescriptor, sides)
	}
	return Descriptor{Count: count, Sides: sides}, nil
}

// String renders the canonical notation with an explicit count,
// e.g. "3d6". A descriptor parsed from "d20" renders as "1d20".
func (d Descriptor) String() string {
	return strconv.Itoa(d.Count) + "d" + strconv.Itoa(d.Sides)
}
