package prompt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBindPreservesShape(t *testing.T) {
	payload := Sequence{
		Message{Role: "system", Content: Text("You are {persona}.")},
		Message{Role: "human", Content: Sequence{
			Mapping{
				{Key: "type", Value: Text("text")},
				{Key: "text", Value: Text("Tell me about {topic}")},
			},
		}},
	}
	values := map[string]string{"persona": "a historian", "topic": "canals"}

	bound, err := Bind(payload, values)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	want := Sequence{
		Message{Role: "system", Content: Text("You are a historian.")},
		Message{Role: "human", Content: Sequence{
			Mapping{
				{Key: "type", Value: Text("text")},
				{Key: "text", Value: Text("Tell me about canals")},
			},
		}},
	}
	if diff := cmp.Diff(want, bound); diff != "" {
		t.Errorf("bound payload mismatch (-want +got):\n%s", diff)
	}

	// Full coverage leaves no placeholders behind.
	if leftover := Variables(bound); len(leftover) != 0 {
		t.Errorf("expected no leftover placeholders, got %v", leftover)
	}
}

func TestBindDoesNotMutateInput(t *testing.T) {
	payload := Mapping{{Key: "text", Value: Text("Hello {name}")}}

	if _, err := Bind(payload, map[string]string{"name": "world"}); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	if got, _ := payload.Get("text"); got != Text("Hello {name}") {
		t.Errorf("input payload mutated: %v", got)
	}
}

func TestBindMissingVariable(t *testing.T) {
	_, err := Bind(Text("{present} and {absent}"), map[string]string{"present": "x"})
	if err == nil {
		t.Fatal("expected error for missing variable")
	}

	var missingErr *MissingVariablesError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingVariablesError, got %T", err)
	}
	if diff := cmp.Diff([]string{"absent"}, missingErr.Missing); diff != "" {
		t.Errorf("missing set mismatch (-want +got):\n%s", diff)
	}
}

func TestBindLeavesLiteralBracesAndUnnamedSlots(t *testing.T) {
	bound, err := Bind(Text("{{json}} {} {0} {name}"), map[string]string{"name": "ok"})
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if bound != Text("{json} {} {0} ok") {
		t.Errorf("unexpected bound text: %q", bound)
	}
}

func TestBindNonStringLeavesPassThrough(t *testing.T) {
	payload := Message{Role: "human", Content: nil}

	bound, err := Bind(payload, map[string]string{})
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if diff := cmp.Diff(payload, bound); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}
