package llm

import (
	"context"
	"fmt"

	"github.com/modelglue/modelglue/prompt"
)

// UnifiedModel is the contract every provider adapter satisfies. Adapters
// normalize prompt formatting and invocation semantics so callers never touch
// a provider SDK directly.
type UnifiedModel interface {
	// ModelName returns the provider's official model identifier, such as
	// "gpt-4o" or "claude-3-7-sonnet-latest".
	ModelName() string

	// ProviderName returns the provider key, constant per adapter.
	ProviderName() string

	// FormatPrompt converts content items into this provider's prompt
	// structure. Equivalent to FormatPrompt fixed to the adapter's provider
	// and system prompt.
	FormatPrompt(items []ContentItem) (prompt.Payload, error)

	// Invoke performs the external model call with a formatted prompt (or a
	// bound template payload) and returns the textual response. Transport and
	// provider failures surface as invocation errors; there is no retry.
	Invoke(ctx context.Context, p prompt.Payload) (string, error)
}

// Options carries adapter construction knobs. The factory merges per-provider
// defaults underneath caller-supplied values, so a zero field means "use the
// provider default".
type Options struct {
	// System is an optional system instruction prepended by FormatPrompt.
	System string
	// MaxTokens bounds the response length.
	MaxTokens int64
	// Temperature overrides the provider default when non-nil.
	Temperature *float64

	// Credentials and endpoints. Which ones apply depends on the provider.
	APIKey       string
	BaseURL      string
	Host         string
	Organization string
}

// Constructor builds a provider adapter for a model name with merged options.
type Constructor func(modelName string, opts Options) (UnifiedModel, error)

// ProcessWithImages composes a text item plus image items, formats them for
// the model's provider, and invokes the model in one call.
func ProcessWithImages(ctx context.Context, m UnifiedModel, text string, images ...ContentItem) (string, error) {
	items := make([]ContentItem, 0, len(images)+1)
	if text != "" {
		items = append(items, NewText(text))
	}
	for _, img := range images {
		if img.Type != ContentItemTypeImage {
			return "", NewValidationError(fmt.Sprintf("expected image content item, got %q", img.Type), nil)
		}
		items = append(items, img)
	}

	payload, err := m.FormatPrompt(items)
	if err != nil {
		return "", err
	}
	return m.Invoke(ctx, payload)
}
