package llm

import (
	"context"
	"testing"

	"github.com/modelglue/modelglue/prompt"
)

// stubModel records the options the factory constructed it with.
type stubModel struct {
	model string
	opts  Options
}

func (s *stubModel) ModelName() string    { return s.model }
func (s *stubModel) ProviderName() string { return "stub" }
func (s *stubModel) FormatPrompt(items []ContentItem) (prompt.Payload, error) {
	return FormatPrompt(items, ProviderOpenAI, s.opts.System)
}
func (s *stubModel) Invoke(context.Context, prompt.Payload) (string, error) {
	return "", NewInvocationError("stub model cannot invoke", nil)
}

func stubConstructor(model string, opts Options) (UnifiedModel, error) {
	return &stubModel{model: model, opts: opts}, nil
}

func newStubFactory() *Factory {
	f := NewFactory()
	f.RegisterProvider(ProviderOpenAI, stubConstructor)
	f.SetDefaults(ProviderOpenAI, "gpt-4o", Options{MaxTokens: 4000})
	return f
}

func TestFactoryCreateMergesDefaults(t *testing.T) {
	f := newStubFactory()

	m, err := f.Create("gpt-4o", Options{})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	stub := m.(*stubModel)
	if stub.opts.MaxTokens != 4000 {
		t.Errorf("expected default max tokens 4000, got %d", stub.opts.MaxTokens)
	}
}

func TestFactoryCreateExplicitOptionsWin(t *testing.T) {
	f := newStubFactory()

	m, err := f.Create("gpt-4o", Options{MaxTokens: 1234})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	stub := m.(*stubModel)
	if stub.opts.MaxTokens != 1234 {
		t.Errorf("expected explicit max tokens 1234, got %d", stub.opts.MaxTokens)
	}
}

func TestFactoryCreateUnresolvableModel(t *testing.T) {
	f := newStubFactory()

	_, err := f.Create("unknown-x", Options{})
	if err == nil {
		t.Fatal("expected error for unresolvable model")
	}
	if !IsConfigError(err) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestFactoryCreateUnregisteredProvider(t *testing.T) {
	f := newStubFactory()

	_, err := f.Create("claude-3-7-sonnet-latest", Options{})
	if err == nil {
		t.Fatal("expected error for unregistered provider")
	}
	if !IsConfigError(err) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestFactoryCreateForProviderDefaultModel(t *testing.T) {
	f := newStubFactory()

	m, err := f.CreateForProvider(ProviderOpenAI, "", Options{})
	if err != nil {
		t.Fatalf("CreateForProvider failed: %v", err)
	}
	if m.ModelName() != "gpt-4o" {
		t.Errorf("expected default model gpt-4o, got %q", m.ModelName())
	}
}

func TestFactoryCreateForProviderNoModel(t *testing.T) {
	f := NewFactory()
	f.RegisterProvider(ProviderOllama, stubConstructor)

	if _, err := f.CreateForProvider(ProviderOllama, "", Options{}); err == nil {
		t.Fatal("expected error when no model and no default are available")
	}
}

func TestFactoryRegisterOverwrite(t *testing.T) {
	f := newStubFactory()

	called := false
	f.RegisterProvider(ProviderOpenAI, func(model string, opts Options) (UnifiedModel, error) {
		called = true
		return stubConstructor(model, opts)
	})

	if _, err := f.Create("gpt-4o", Options{}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !called {
		t.Error("expected overwriting constructor to be used")
	}
}

func TestFactoryProvidersAndReset(t *testing.T) {
	f := newStubFactory()
	f.RegisterProvider(ProviderAnthropic, stubConstructor)

	providers := f.Providers()
	if len(providers) != 2 || providers[0] != ProviderAnthropic || providers[1] != ProviderOpenAI {
		t.Errorf("unexpected providers: %v", providers)
	}

	f.Reset()
	if len(f.Providers()) != 0 {
		t.Errorf("expected empty factory after Reset, got %v", f.Providers())
	}
}
