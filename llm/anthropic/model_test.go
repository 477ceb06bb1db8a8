package anthropic

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/modelglue/modelglue/llm"
	"github.com/modelglue/modelglue/prompt"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New("claude-3-7-sonnet-latest", llm.Options{}, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error without api key")
	}
	if !llm.IsConfigError(err) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestModelIdentity(t *testing.T) {
	m, err := New("claude-3-7-sonnet-latest", llm.Options{APIKey: "test-key"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if m.ModelName() != "claude-3-7-sonnet-latest" {
		t.Errorf("unexpected model name: %q", m.ModelName())
	}
	if m.ProviderName() != llm.ProviderAnthropic {
		t.Errorf("unexpected provider name: %q", m.ProviderName())
	}
}

func TestFormatPromptUsesAnthropicImageShape(t *testing.T) {
	m, err := New("claude-3-7-sonnet-latest", llm.Options{APIKey: "test-key", System: "be brief"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	payload, err := m.FormatPrompt([]llm.ContentItem{llm.NewText("describe"), llm.NewImage("aGVsbG8=", "png")})
	if err != nil {
		t.Fatalf("FormatPrompt failed: %v", err)
	}

	turns := payload.(prompt.Sequence)
	if len(turns) != 2 || turns[0].(prompt.Message).Role != llm.RoleSystem {
		t.Fatalf("expected system + human turns, got %#v", payload)
	}

	parts := turns[1].(prompt.Message).Content.(prompt.Sequence)
	imagePart := parts[1].(prompt.Mapping)
	if partType, _ := imagePart.Get("type"); partType != prompt.Text("image") {
		t.Errorf("expected anthropic image part, got %v", partType)
	}
	if _, ok := imagePart.Get("source"); !ok {
		t.Error("expected base64 source mapping on image part")
	}
}

func TestToContentBlocksRejectsURLOnlyImages(t *testing.T) {
	_, err := toContentBlocks([]llm.PromptPart{{Type: "image", URL: "https://example.com/cat.png"}})
	if err == nil {
		t.Fatal("expected error for image part without base64 payload")
	}
}
