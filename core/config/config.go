package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Valid ranges for the numeric settings. Updates outside these ranges are
// rejected before any value changes.
const (
	MinIterations = 1
	MaxIterations = 100

	MinContextTokens = 1
	MaxContextTokens = 50000
)

// Defaults used by [Default] when the environment provides nothing.
const (
	DefaultMaxIterations      = 10
	DefaultContextTokensLimit = 4000
)

// Environment variable names read by [Load]. "Max turns" and "max input
// tokens" are the host-facing aliases for the first two.
const (
	EnvMaxIterations       = "REACTOR_MAX_ITERATIONS"
	EnvContextTokensLimit  = "REACTOR_CONTEXT_TOKENS_LIMIT"
	EnvIncludeMemory       = "REACTOR_INCLUDE_MEMORY"
	EnvConfidenceThreshold = "REACTOR_CONFIDENCE_THRESHOLD"
	EnvSaveScratchpad      = "REACTOR_SAVE_SCRATCHPAD"
)

// Config is one run's configuration. It is copied into the loop at
// construction, so later changes to a shared template never affect a run in
// flight.
type Config struct {
	// MaxIterations caps the number of reasoning iterations per run (alias:
	// "max turns"). Valid range [MinIterations, MaxIterations].
	MaxIterations int

	// ContextTokensLimit caps the estimated token size of the accumulated
	// prompt (alias: "max input tokens"). Valid range
	// [MinContextTokens, MaxContextTokens].
	ContextTokensLimit int

	// IncludeMemory folds recalled memory entries into the prompt preamble
	// when a memory provider is attached to the loop.
	IncludeMemory bool

	// ConfidenceThreshold is carried for hosts that gate answer acceptance
	// above the loop; the engine validates it (0–1) but does not act on it.
	ConfidenceThreshold float64

	// SaveScratchpad exposes the final rendered scratchpad on the run result.
	SaveScratchpad bool
}

// Update is a partial configuration change. Nil fields are left untouched.
type Update struct {
	MaxIterations       *int
	ContextTokensLimit  *int
	IncludeMemory       *bool
	ConfidenceThreshold *float64
	SaveScratchpad      *bool
}

// Default returns the process-wide configuration template.
func Default() Config {
	return Config{
		MaxIterations:       DefaultMaxIterations,
		ContextTokensLimit:  DefaultContextTokensLimit,
		IncludeMemory:       true,
		ConfidenceThreshold: 0.7,
		SaveScratchpad:      false,
	}
}

// Validate checks every field against its valid range.
func (c Config) Validate() error {
	if c.MaxIterations < MinIterations || c.MaxIterations > MaxIterations {
		return fmt.Errorf("max_iterations %d out of range [%d, %d]", c.MaxIterations, MinIterations, MaxIterations)
	}
	if c.ContextTokensLimit < MinContextTokens || c.ContextTokensLimit > MaxContextTokens {
		return fmt.Errorf("context_tokens_limit %d out of range [%d, %d]", c.ContextTokensLimit, MinContextTokens, MaxContextTokens)
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold %v out of range [0, 1]", c.ConfidenceThreshold)
	}
	return nil
}

// Apply returns a copy of c with the update applied, or an error if any
// updated value falls outside its range. The receiver is never modified, so
// a rejected update leaves the prior configuration intact.
func (c Config) Apply(u Update) (Config, error) {
	next := c
	if u.MaxIterations != nil {
		next.MaxIterations = *u.MaxIterations
	}
	if u.ContextTokensLimit != nil {
		next.ContextTokensLimit = *u.ContextTokensLimit
	}
	if u.IncludeMemory != nil {
		next.IncludeMemory = *u.IncludeMemory
	}
	if u.ConfidenceThreshold != nil {
		next.ConfidenceThreshold = *u.ConfidenceThreshold
	}
	if u.SaveScratchpad != nil {
		next.SaveScratchpad = *u.SaveScratchpad
	}
	if err := next.Validate(); err != nil {
		return c, err
	}
	return next, nil
}

// Load returns [Default] overridden by any REACTOR_* environment variables.
// A .env file in the working directory is loaded first when present; a
// missing file is not an error. Malformed or out-of-range values are
// reported, and the returned config is the last valid state.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if v, ok := os.LookupEnv(EnvMaxIterations); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvMaxIterations, err)
		}
		next, err := cfg.Apply(Update{MaxIterations: &n})
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvMaxIterations, err)
		}
		cfg = next
	}

	if v, ok := os.LookupEnv(EnvContextTokensLimit); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvContextTokensLimit, err)
		}
		next, err := cfg.Apply(Update{ContextTokensLimit: &n})
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvContextTokensLimit, err)
		}
		cfg = next
	}

	if v, ok := os.LookupEnv(EnvIncludeMemory); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvIncludeMemory, err)
		}
		cfg.IncludeMemory = b
	}

	if v, ok := os.LookupEnv(EnvConfidenceThreshold); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvConfidenceThreshold, err)
		}
		next, err := cfg.Apply(Update{ConfidenceThreshold: &f})
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvConfidenceThreshold, err)
		}
		cfg = next
	}

	if v, ok := os.LookupEnv(EnvSaveScratchpad); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSaveScratchpad, err)
		}
		cfg.SaveScratchpad = b
	}

	return cfg, nil
}
