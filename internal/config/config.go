// Package config loads the optional rollctl TOML configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds run defaults and named dice presets. Flags override
// config values; config values override built-in defaults.
type Config struct {
	// Aggregate is the default aggregate function name, applied when
	// the flag is absent. Empty means raw roll output.
	Aggregate string
	// Seed fixes the random source when non-zero.
	Seed int64
	// LogLevel names the default log level ("debug", "info", ...).
	LogLevel string
	// Presets maps a name to the dice tokens it expands to.
	Presets map[string][]string
}

type fileConfig struct {
	Aggregate string              `toml:"aggregate"`
	Seed      int64               `toml:"seed"`
	LogLevel  string              `toml:"log_level"`
	Presets   map[string][]string `toml:"presets"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Presets: map[string][]string{}}
}

// Load reads a config file, applying only the keys it defines on top
// of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load rollctl config: %w", err)
	}

	if meta.IsDefined("aggregate") {
		cfg.Aggregate = strings.ToLower(strings.TrimSpace(raw.Aggregate))
	}

	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if meta.IsDefined("presets") {
		cfg.Presets = normalizePresets(raw.Presets)
	}

	return cfg, nil
}

// ExpandTokens replaces each argument naming a preset with that
// preset's tokens, in place and in order. Expansion is single-level:
// preset entries are taken as dice tokens, never as further preset
// names. Unknown names pass through untouched and fail later as
// malformed tokens.
func (c Config) ExpandTokens(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if tokens, ok := c.Presets[arg]; ok {
			out = append(out, tokens...)
			continue
		}
		out = append(out, arg)
	}
	return out
}

func normalizePresets(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for name, tokens := range in {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		kept := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			kept = append(kept, tok)
		}
		out[name] = kept
	}
	return out
}
