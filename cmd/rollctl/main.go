package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/danmuck/rollctl/internal/aggregate"
	"github.com/danmuck/rollctl/internal/config"
	"github.com/danmuck/rollctl/internal/dice"
	"github.com/danmuck/rollctl/internal/logging"
	"github.com/danmuck/rollctl/internal/roller"
	"github.com/rs/zerolog"
)

const (
	exitOK = iota
	exitError
	exitNothingToDo
)

type options struct {
	aggregate   string
	configPath  string
	seed        int64
	verbose     bool
	writeConfig string
	force       bool
	tokens      []string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args)
	if err != nil {
		return exitError
	}

	if opts.writeConfig != "" {
		if err := config.WriteTemplate(opts.writeConfig, opts.force); err != nil {
			fmt.Fprintf(os.Stderr, "rollctl: %v\n", err)
			return exitError
		}
		fmt.Fprintf(os.Stderr, "rollctl: wrote config template to %s\n", opts.writeConfig)
		return exitOK
	}

	cfg := config.Default()
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rollctl: %v\n", err)
			return exitError
		}
	}

	logging.ConfigureRuntime()
	switch {
	case opts.verbose:
		logging.SetLevel(zerolog.DebugLevel)
	case cfg.LogLevel != "":
		if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
			logging.SetLevel(lvl)
		}
	}

	sel := aggregate.None
	if name := pickAggregate(opts, cfg); name != "" {
		sel, err = aggregate.ParseSelector(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rollctl: %v\n", err)
			return exitError
		}
	}

	tokens := cfg.ExpandTokens(opts.tokens)
	if len(tokens) == 0 {
		fmt.Fprintln(os.Stderr, "rollctl: provide dice tokens to roll, e.g. 3d6 d20")
		return exitNothingToDo
	}

	svc := roller.NewService(sel, dice.NewSource(pickSeed(opts, cfg)))
	if err := svc.Run(tokens); err != nil {
		if !errors.Is(err, roller.ErrBadBatch) {
			fmt.Fprintf(os.Stderr, "rollctl: %v\n", err)
		}
		return exitError
	}
	return exitOK
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("rollctl", flag.ContinueOnError)
	fs.StringVar(&opts.aggregate, "aggregate", "", "aggregate function: sum|avg|max|min")
	fs.StringVar(&opts.configPath, "config", "", "path to rollctl config file")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed (0 = time-based)")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.StringVar(&opts.writeConfig, "write-config", "", "write a config template to the given path and exit")
	fs.BoolVar(&opts.force, "force", false, "overwrite an existing config template")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: rollctl [flags] <dice|preset>...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.tokens = fs.Args()
	return opts, nil
}

// pickAggregate resolves flag over config.
func pickAggregate(opts options, cfg config.Config) string {
	if opts.aggregate != "" {
		return opts.aggregate
	}
	return cfg.Aggregate
}

// pickSeed resolves flag over config; zero in both means time-seeded.
func pickSeed(opts options, cfg config.Config) int64 {
	seed := opts.seed
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return seed
}
