package config

import (
	"strings"
	"testing"
)

func intPtr(n int) *int           { return &n }
func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got: %v", err)
	}
}

func TestApply_ValidUpdate(t *testing.T) {
	cfg := Default()

	next, err := cfg.Apply(Update{
		MaxIterations:      intPtr(15),
		ContextTokensLimit: intPtr(3000),
	})
	if err != nil {
		t.Fatalf("Expected update to be accepted, got: %v", err)
	}

	if next.MaxIterations != 15 {
		t.Errorf("Expected max_iterations 15, got: %d", next.MaxIterations)
	}
	if next.ContextTokensLimit != 3000 {
		t.Errorf("Expected context_tokens_limit 3000, got: %d", next.ContextTokensLimit)
	}
}

func TestApply_RejectedUpdateLeavesPriorValues(t *testing.T) {
	cfg, err := Default().Apply(Update{
		MaxIterations:      intPtr(15),
		ContextTokensLimit: intPtr(3000),
	})
	if err != nil {
		t.Fatalf("Expected first update to be accepted, got: %v", err)
	}

	// 150 exceeds the iteration cap; the whole update must be rejected,
	// including the otherwise-valid tokens value.
	after, err := cfg.Apply(Update{
		MaxIterations:      intPtr(150),
		ContextTokensLimit: intPtr(2000),
	})
	if err == nil {
		t.Fatal("Expected out-of-range update to be rejected")
	}
	if !strings.Contains(err.Error(), "max_iterations") {
		t.Errorf("Expected rejection to name max_iterations, got: %v", err)
	}

	if after.MaxIterations != 15 {
		t.Errorf("Expected prior max_iterations 15 retained, got: %d", after.MaxIterations)
	}
	if after.ContextTokensLimit != 3000 {
		t.Errorf("Expected prior context_tokens_limit 3000 retained, got: %d", after.ContextTokensLimit)
	}
}

func TestApply_RangeBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		update  Update
		wantErr bool
	}{
		{"iterations at lower bound", Update{MaxIterations: intPtr(1)}, false},
		{"iterations at upper bound", Update{MaxIterations: intPtr(100)}, false},
		{"iterations below range", Update{MaxIterations: intPtr(0)}, true},
		{"iterations above range", Update{MaxIterations: intPtr(101)}, true},
		{"tokens at lower bound", Update{ContextTokensLimit: intPtr(1)}, false},
		{"tokens at upper bound", Update{ContextTokensLimit: intPtr(50000)}, false},
		{"tokens above range", Update{ContextTokensLimit: intPtr(50001)}, true},
		{"threshold above range", Update{ConfidenceThreshold: floatPtr(1.5)}, true},
		{"threshold at bound", Update{ConfidenceThreshold: floatPtr(1.0)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Default().Apply(tc.update)
			if tc.wantErr && err == nil {
				t.Error("Expected rejection, got nil error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected acceptance, got: %v", err)
			}
		})
	}
}

func TestApply_FlagsAndNilFields(t *testing.T) {
	cfg := Default()

	next, err := cfg.Apply(Update{IncludeMemory: boolPtr(false), SaveScratchpad: boolPtr(true)})
	if err != nil {
		t.Fatalf("Expected flag update to be accepted, got: %v", err)
	}
	if next.IncludeMemory {
		t.Error("Expected include_memory false")
	}
	if !next.SaveScratchpad {
		t.Error("Expected save_scratchpad true")
	}
	// Untouched fields keep their prior values.
	if next.MaxIterations != cfg.MaxIterations {
		t.Errorf("Expected max_iterations unchanged, got: %d", next.MaxIterations)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvMaxIterations, "25")
	t.Setenv(EnvContextTokensLimit, "1234")
	t.Setenv(EnvIncludeMemory, "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected load to succeed, got: %v", err)
	}
	if cfg.MaxIterations != 25 {
		t.Errorf("Expected max_iterations 25, got: %d", cfg.MaxIterations)
	}
	if cfg.ContextTokensLimit != 1234 {
		t.Errorf("Expected context_tokens_limit 1234, got: %d", cfg.ContextTokensLimit)
	}
	if cfg.IncludeMemory {
		t.Error("Expected include_memory false")
	}
}

func TestLoad_RejectsOutOfRangeEnv(t *testing.T) {
	t.Setenv(EnvMaxIterations, "500")

	if _, err := Load(); err == nil {
		t.Fatal("Expected out-of-range env value to be rejected")
	}
}
