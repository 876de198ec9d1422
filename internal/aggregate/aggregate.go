// Package aggregate reduces a sequence of die rolls to a rendered
// summary value.
package aggregate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownSelector indicates an aggregate name outside
// sum, avg, max, min.
var ErrUnknownSelector = errors.New("unknown aggregate function")

// ErrEmptySequence indicates a reducer received zero rolls. Descriptor
// validation keeps this unreachable in normal operation; it is handled
// rather than assumed away.
var ErrEmptySequence = errors.New("aggregate of empty roll sequence")

// Selector picks the reduction applied to every die's rolls for a run.
type Selector int

const (
	None Selector = iota
	Sum
	Average
	Max
	Min
)

func (s Selector) String() string {
	switch s {
	case None:
		return "none"
	case Sum:
		return "sum"
	case Average:
		return "avg"
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return "unknown"
	}
}

// ParseSelector matches an aggregate name case-insensitively against
// sum, avg, max, and min.
func ParseSelector(name string) (Selector, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sum":
		return Sum, nil
	case "avg":
		return Average, nil
	case "max":
		return Max, nil
	case "min":
		return Min, nil
	default:
		return None, fmt.Errorf("%w: %q (want sum, avg, max, or min)", ErrUnknownSelector, name)
	}
}

// Apply reduces rolls per the selector and renders the result.
//
// None renders the raw sequence space-joined in roll order. Average
// divides in float64, so 7/2 renders "3.5", never a truncated 3; a
// whole-number mean renders without a decimal point.
func Apply(sel Selector, rolls []int) (string, error) {
	if sel == None {
		return join(rolls), nil
	}
	if len(rolls) == 0 {
		return "", fmt.Errorf("%w: selector %s", ErrEmptySequence, sel)
	}

	switch sel {
	case Sum:
		return strconv.Itoa(sum(rolls)), nil
	case Average:
		mean := float64(sum(rolls)) / float64(len(rolls))
		return strconv.FormatFloat(mean, 'f', -1, 64), nil
	case Max:
		top := rolls[0]
		for _, v := range rolls[1:] {
			if v > top {
				top = v
			}
		}
		return strconv.Itoa(top), nil
	case Min:
		low := rolls[0]
		for _, v := range rolls[1:] {
			if v < low {
				low = v
			}
		}
		return strconv.Itoa(low), nil
	default:
		return "", fmt.Errorf("%w: selector %d", ErrUnknownSelector, int(sel))
	}
}

func sum(rolls []int) int {
	total := 0
	for _, v := range rolls {
		total += v
	}
	return total
}

func join(rolls []int) string {
	parts := make([]string, len(rolls))
	for i, v := range rolls {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
