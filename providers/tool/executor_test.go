package tool

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestExecutor_UnknownToolReturnsText(t *testing.T) {
	r := NewRegistryWith(echoCapability("known"))
	e := NewExecutor(r)

	out := e.Execute(context.Background(), "missing", map[string]any{"x": 1})

	if !strings.Contains(out, `"missing" not found`) {
		t.Errorf("Expected not-found message, got: %q", out)
	}
	if !strings.Contains(out, "known") {
		t.Errorf("Expected available tools listed, got: %q", out)
	}
}

func TestExecutor_EmptyRegistry(t *testing.T) {
	out := NewExecutor(NewRegistry()).Execute(context.Background(), "anything", nil)

	if !strings.Contains(out, "no tools are registered") {
		t.Errorf("Expected empty-registry message, got: %q", out)
	}
}

func TestExecutor_NilRegistry(t *testing.T) {
	out := NewExecutor(nil).Execute(context.Background(), "anything", nil)

	if !strings.Contains(out, "not found") {
		t.Errorf("Expected not-found message for nil registry, got: %q", out)
	}
}

func TestExecutor_InvocationErrorBecomesObservation(t *testing.T) {
	failing := NewFunc("broken", func(_ context.Context, _ map[string]any) (string, error) {
		return "", errors.New("disk on fire")
	})
	e := NewExecutor(NewRegistryWith(failing))

	out := e.Execute(context.Background(), "broken", nil)

	if !strings.Contains(out, `"broken" failed`) || !strings.Contains(out, "disk on fire") {
		t.Errorf("Expected failure embedded in observation, got: %q", out)
	}
}

func TestExecutor_PanicIsContained(t *testing.T) {
	panicking := NewFunc("bomb", func(_ context.Context, _ map[string]any) (string, error) {
		panic("boom")
	})
	e := NewExecutor(NewRegistryWith(panicking))

	out := e.Execute(context.Background(), "bomb", nil)

	if !strings.Contains(out, "panicked") || !strings.Contains(out, "boom") {
		t.Errorf("Expected panic converted to observation, got: %q", out)
	}
}

func TestExecutor_SuccessPassesThroughOutput(t *testing.T) {
	lister := NewFunc("list_files", func(_ context.Context, args map[string]any) (string, error) {
		if args["directory_path"] != "." {
			t.Errorf("Expected directory_path '.', got: %v", args["directory_path"])
		}
		return "[a.txt, b.txt]", nil
	})
	e := NewExecutor(NewRegistryWith(lister))

	out := e.Execute(context.Background(), "list_files", map[string]any{"directory_path": "."})

	if out != "[a.txt, b.txt]" {
		t.Errorf("Expected raw tool output, got: %q", out)
	}
}
