// Package roller runs a batch of dice tokens end to end: parse every
// token, roll each descriptor, reduce, and write one output line per
// die.
package roller

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/rollctl/internal/aggregate"
	"github.com/danmuck/rollctl/internal/dice"
)

// ErrNoDice indicates a run was requested with no tokens at all.
var ErrNoDice = errors.New("no dice tokens to roll")

// ErrBadBatch indicates at least one token failed to parse. Individual
// token errors are reported on the service's error writer before Run
// returns this.
var ErrBadBatch = errors.New("invalid dice tokens")

// Service rolls dice batches. The random source and writers are
// injected; tests substitute deterministic sources and buffers.
type Service struct {
	Selector aggregate.Selector
	Source   dice.Source

	Stdout io.Writer
	Stderr io.Writer
}

// NewService builds a Service writing to the process streams.
func NewService(sel aggregate.Selector, src dice.Source) *Service {
	return &Service{
		Selector: sel,
		Source:   src,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

// ParseBatch parses every token before any rolling, collecting all
// failures so a bad batch reports each offending token.
func ParseBatch(tokens []string) ([]dice.Descriptor, []error) {
	descs := make([]dice.Descriptor, 0, len(tokens))
	var errs []error
	for _, tok := range tokens {
		d, err := dice.Parse(tok)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		descs = append(descs, d)
	}
	return descs, errs
}

// Run processes the batch. The whole batch must parse before the first
// roll happens; a batch with any malformed token produces no roll
// output.
func (s *Service) Run(tokens []string) error {
	if len(tokens) == 0 {
		return ErrNoDice
	}

	descs, errs := ParseBatch(tokens)
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(s.Stderr, "rollctl: %v\n", err)
		}
		return fmt.Errorf("%w: %d of %d rejected", ErrBadBatch, len(errs), len(tokens))
	}

	for _, d := range descs {
		rolls := dice.Roll(d, s.Source)
		log.Debug().Stringer("die", d).Ints("rolls", rolls).Msg("rolled")

		result, err := aggregate.Apply(s.Selector, rolls)
		if err != nil {
			return fmt.Errorf("aggregate %s for %s: %w", s.Selector, d, err)
		}
		fmt.Fprintf(s.Stdout, "%s %s\n", d, result)
	}
	return nil
}
