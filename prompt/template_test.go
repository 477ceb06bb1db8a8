package prompt

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func TestTemplateFirstVariantFixesDefaults(t *testing.T) {
	tmpl := NewTemplate("summary", "summarizes things", zerolog.Nop())
	tmpl.AddVariant("anthropic", Text("Summarize {doc}"))

	if tmpl.DefaultProvider() != "anthropic" {
		t.Errorf("expected default provider anthropic, got %q", tmpl.DefaultProvider())
	}
	if diff := cmp.Diff([]string{"doc"}, tmpl.Variables()); diff != "" {
		t.Errorf("variable set mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplateVariantDriftWarnsButStores(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	tmpl := NewTemplate("summary", "", logger)
	tmpl.AddVariant("anthropic", Text("Summarize {doc}"))
	tmpl.AddVariant("openai", Text("Summarize {doc} in {style}"))

	if !strings.Contains(buf.String(), "variable set differs") {
		t.Errorf("expected drift warning in log output, got: %s", buf.String())
	}

	// The drifted variant is stored, and the variable set is unchanged.
	if diff := cmp.Diff([]string{"doc"}, tmpl.Variables()); diff != "" {
		t.Errorf("variable set changed after drift (-want +got):\n%s", diff)
	}
	for _, provider := range []string{"anthropic", "openai"} {
		if _, err := tmpl.Variant(provider); err != nil {
			t.Errorf("variant %q not retrievable: %v", provider, err)
		}
	}
}

func TestTemplateResolveProvider(t *testing.T) {
	tmpl := NewTemplate("summary", "", zerolog.Nop())
	tmpl.AddVariant("anthropic", Text("Summarize {doc}"))

	// A stored provider key passes through untouched, even with a resolver set.
	tmpl.SetResolver(func(string) (string, error) { return "", errors.New("should not be called") })
	if got := tmpl.ResolveProvider("anthropic"); got != "anthropic" {
		t.Errorf("expected anthropic, got %q", got)
	}

	// A model name goes through the resolver.
	tmpl.SetResolver(func(model string) (string, error) {
		if strings.HasPrefix(model, "claude-") {
			return "anthropic", nil
		}
		return "", fmt.Errorf("unknown model %q", model)
	})
	if got := tmpl.ResolveProvider("claude-3-7-sonnet-latest"); got != "anthropic" {
		t.Errorf("expected anthropic, got %q", got)
	}

	// A resolver failure falls through to the argument as-is.
	if got := tmpl.ResolveProvider("mystery-model"); got != "mystery-model" {
		t.Errorf("expected pass-through, got %q", got)
	}
}

func TestTemplateVariantFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	tmpl := NewTemplate("summary", "", zerolog.New(&buf))
	tmpl.AddVariant("anthropic", Text("Summarize {doc}"))

	payload, err := tmpl.Variant("google")
	if err != nil {
		t.Fatalf("expected default fallback, got error: %v", err)
	}
	if payload != Text("Summarize {doc}") {
		t.Errorf("unexpected fallback payload: %v", payload)
	}
	if !strings.Contains(buf.String(), "falling back to default") {
		t.Errorf("expected fallback notice in log output, got: %s", buf.String())
	}
}

func TestTemplateVariantNoneAvailable(t *testing.T) {
	tmpl := NewTemplate("empty", "", zerolog.Nop())
	if _, err := tmpl.Variant("anthropic"); err == nil {
		t.Fatal("expected error when no variant and no default exist")
	}
}

func TestTemplateVariantReturnsIsolatedCopy(t *testing.T) {
	tmpl := NewTemplate("summary", "", zerolog.Nop())
	tmpl.AddVariant("anthropic", Sequence{Text("Summarize {doc}")})

	first, err := tmpl.Variant("anthropic")
	if err != nil {
		t.Fatalf("Variant failed: %v", err)
	}
	first.(Sequence)[0] = Text("mutated")

	second, err := tmpl.Variant("anthropic")
	if err != nil {
		t.Fatalf("Variant failed: %v", err)
	}
	if second.(Sequence)[0] != Text("Summarize {doc}") {
		t.Error("stored variant was mutated through a returned copy")
	}
}

func TestTemplateFormat(t *testing.T) {
	tmpl := NewTemplate("summary", "", zerolog.Nop())
	tmpl.AddVariant("anthropic", Text("Summarize {doc} as {persona}"))

	got, err := tmpl.Format("anthropic", map[string]string{"doc": "the report", "persona": "a pirate"})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != Text("Summarize the report as a pirate") {
		t.Errorf("unexpected formatted payload: %v", got)
	}
}

func TestTemplateFormatNamesMissingVariables(t *testing.T) {
	tmpl := NewTemplate("summary", "", zerolog.Nop())
	tmpl.AddVariant("anthropic", Text("Summarize {doc} as {persona}"))

	_, err := tmpl.Format("anthropic", map[string]string{"doc": "the report"})
	if err == nil {
		t.Fatal("expected missing-variables error")
	}

	var missingErr *MissingVariablesError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingVariablesError, got %T", err)
	}
	if diff := cmp.Diff([]string{"persona"}, missingErr.Missing); diff != "" {
		t.Errorf("missing set mismatch (-want +got):\n%s", diff)
	}
	if missingErr.Template != "summary" {
		t.Errorf("expected template name in error, got %q", missingErr.Template)
	}
}
