package scratchpad

import (
	"strings"
	"testing"
)

func TestEstimateTokens(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 1},
		{"abcd", 1},
		{"abcde", 2},
		{strings.Repeat("x", 400), 100},
	}
	for _, tc := range cases {
		if got := EstimateTokens(tc.in); got != tc.want {
			t.Errorf("EstimateTokens(%d chars) = %d, want %d", len(tc.in), got, tc.want)
		}
	}
}

func TestPad_MonotonicWithoutPressure(t *testing.T) {
	pad := New("Goal: list the files", 50000)

	prev := pad.Render()
	pad.AppendThought("Thought: I should look around")
	mid := pad.Render()
	pad.AppendExchange("Thought: listing now", `list_files {"directory_path": "."}`, "[a.txt, b.txt]")
	last := pad.Render()

	if !strings.HasPrefix(mid, prev) {
		t.Error("Expected earlier render to be a prefix of the next")
	}
	if !strings.HasPrefix(last, mid) {
		t.Error("Expected render to grow monotonically")
	}
	if !strings.Contains(last, "Observation: [a.txt, b.txt]") {
		t.Errorf("Expected observation in render, got: %q", last)
	}
}

func TestPad_EvictsOldestUnderPressure(t *testing.T) {
	goal := "Goal: keep going"
	pad := New(goal, 60) // ~240 chars of budget

	for i := 0; i < 10; i++ {
		pad.AppendExchange("Thought: step", "tool {}", strings.Repeat("o", 80))
	}

	render := pad.Render()

	if !strings.HasPrefix(render, goal) {
		t.Error("Expected goal to survive eviction")
	}
	entries := pad.Entries()
	if len(entries) != KeepLast {
		t.Errorf("Expected eviction down to %d entries, got: %d", KeepLast, len(entries))
	}
	// The newest entry must always survive.
	if !strings.Contains(render, entries[len(entries)-1]) {
		t.Error("Expected newest entry in render")
	}
}

func TestPad_PreambleSurvivesEviction(t *testing.T) {
	pad := New("Goal: remember things", 80)
	pad.SetPreamble([]string{"Memory: user prefers short answers"})

	for i := 0; i < 8; i++ {
		pad.AppendThought(strings.Repeat("t", 100))
	}

	if !strings.Contains(pad.Render(), "Memory: user prefers short answers") {
		t.Error("Expected preamble to survive eviction")
	}
}

func TestPad_ExhaustedWhenProtectedContentExceedsLimit(t *testing.T) {
	pad := New(strings.Repeat("g", 400), 10)

	if !pad.Exhausted() {
		t.Error("Expected pad to report exhaustion when the goal alone exceeds the limit")
	}

	pad2 := New("small goal", 50000)
	if pad2.Exhausted() {
		t.Error("Expected fresh pad with large limit to have budget")
	}
}
