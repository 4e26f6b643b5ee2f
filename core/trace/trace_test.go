package trace

import (
	"testing"

	"github.com/leofalp/reactor/core/parse"
)

func TestTrace_AppendAndRead(t *testing.T) {
	tr := New()

	if tr.Len() != 0 {
		t.Fatalf("Expected empty trace, got len %d", tr.Len())
	}
	if _, ok := tr.Last(); ok {
		t.Fatal("Expected Last to report empty")
	}

	tr.Append(Step{Index: 0, Response: "Thought: hmm"})
	tr.Append(Step{
		Index:       1,
		Response:    "Action: list_files",
		Action:      &parse.Action{Name: "list_files", Args: map[string]any{"directory_path": "."}},
		Observation: "[a.txt]",
	})

	if tr.Len() != 2 {
		t.Fatalf("Expected 2 steps, got: %d", tr.Len())
	}

	last, ok := tr.Last()
	if !ok {
		t.Fatal("Expected a last step")
	}
	if last.Action == nil || last.Action.Name != "list_files" {
		t.Errorf("Expected last step action 'list_files', got: %+v", last.Action)
	}
}

func TestTrace_StepsReturnsCopy(t *testing.T) {
	tr := New()
	tr.Append(Step{Index: 0, Response: "a"})

	steps := tr.Steps()
	steps[0].Response = "mutated"

	if got, _ := tr.Last(); got.Response != "a" {
		t.Errorf("Expected internal steps untouched, got: %q", got.Response)
	}
}
