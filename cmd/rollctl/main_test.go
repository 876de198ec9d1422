package main

import (
	"testing"

	"github.com/danmuck/rollctl/internal/config"
)

func TestParseFlagsSplitsFlagsAndTokens(t *testing.T) {
	opts, err := parseFlags([]string{"-aggregate", "sum", "-seed", "7", "3d6", "d20"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if opts.aggregate != "sum" {
		t.Fatalf("unexpected aggregate: %q", opts.aggregate)
	}
	if opts.seed != 7 {
		t.Fatalf("unexpected seed: %d", opts.seed)
	}
	if len(opts.tokens) != 2 || opts.tokens[0] != "3d6" || opts.tokens[1] != "d20" {
		t.Fatalf("unexpected tokens: %+v", opts.tokens)
	}
}

func TestPickAggregatePrefersFlag(t *testing.T) {
	cfg := config.Default()
	cfg.Aggregate = "avg"

	if got := pickAggregate(options{aggregate: "max"}, cfg); got != "max" {
		t.Fatalf("flag should win, got %q", got)
	}
	if got := pickAggregate(options{}, cfg); got != "avg" {
		t.Fatalf("config should fill absent flag, got %q", got)
	}
	if got := pickAggregate(options{}, config.Default()); got != "" {
		t.Fatalf("expected empty default, got %q", got)
	}
}

func TestPickSeedPrecedence(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 99

	if got := pickSeed(options{seed: 5}, cfg); got != 5 {
		t.Fatalf("flag seed should win, got %d", got)
	}
	if got := pickSeed(options{}, cfg); got != 99 {
		t.Fatalf("config seed should fill absent flag, got %d", got)
	}
	if got := pickSeed(options{}, config.Default()); got == 0 {
		t.Fatalf("zero seeds everywhere should fall back to a time seed")
	}
}
