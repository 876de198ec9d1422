package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a dice-notation token into a Descriptor.
//
// The grammar is <count>?d<sides>: an optional digit run, the literal
// separator "d" (lowercase), and a required digit run. The whole token
// must match; no other characters are permitted. An absent count
// defaults to 1.
//
// Grammar failures return ErrMalformedToken with the offending token
// and field named. Tokens that match the grammar but violate the
// descriptor bounds return ErrInvalidDescriptor.
func Parse(token string) (Descriptor, error) {
	rawCount, rawSides, found := strings.Cut(token, "d")
	if !found {
		return Descriptor{}, fmt.Errorf("%w: %q has no \"d\" separator", ErrMalformedToken, token)
	}

	count := 1
	if rawCount != "" {
		n, err := parseField(rawCount)
		if err != nil {
			return Descriptor{}, fmt.Errorf("%w: %q count: %v", ErrMalformedToken, token, err)
		}
		count = n
	}

	if rawSides == "" {
		return Descriptor{}, fmt.Errorf("%w: %q is missing sides", ErrMalformedToken, token)
	}
	sides, err := parseField(rawSides)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: %q sides: %v", ErrMalformedToken, token, err)
	}

	desc, err := New(count, sides)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w (from token %q)", err, token)
	}
	return desc, nil
}

// parseField parses one digit-run field. Cutting on "d" guarantees the
// count field holds no separator, and a stray "d" in the sides field
// shows up here as a non-digit character.
func parseField(raw string) (int, error) {
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("unexpected character %q", r)
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// All-digit input only fails Atoi on overflow.
		return 0, fmt.Errorf("value %q overflows int", raw)
	}
	return n, nil
}
