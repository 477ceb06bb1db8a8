// Package anthropic implements the llm.UnifiedModel contract for Anthropic's
// Claude models on top of the official anthropic-sdk-go client.
package anthropic

import (
	"context"
	"fmt"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"

	"github.com/modelglue/modelglue/llm"
	"github.com/modelglue/modelglue/prompt"
)

// Anthropic rejects requests without a max_tokens value.
const fallbackMaxTokens = 1024

// Model is the Anthropic adapter.
type Model struct {
	modelName   string
	system      string
	maxTokens   int64
	temperature *float64
	client      *anthropic.Client
	logger      zerolog.Logger
}

// New creates an Anthropic adapter for the given model. An API key is
// required.
func New(modelName string, opts llm.Options, logger zerolog.Logger) (*Model, error) {
	if opts.APIKey == "" {
		return nil, llm.NewConfigError("anthropic api key is required", nil)
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = fallbackMaxTokens
	}

	client := anthropic.NewClient(option.WithAPIKey(opts.APIKey))
	return &Model{
		modelName:   modelName,
		system:      opts.System,
		maxTokens:   maxTokens,
		temperature: opts.Temperature,
		client:      &client,
		logger:      logger.With().Str("provider", llm.ProviderAnthropic).Str("model", modelName).Logger(),
	}, nil
}

// Constructor returns a factory constructor bound to the given logger.
func Constructor(logger zerolog.Logger) llm.Constructor {
	return func(modelName string, opts llm.Options) (llm.UnifiedModel, error) {
		return New(modelName, opts, logger)
	}
}

// ModelName implements llm.UnifiedModel.
func (m *Model) ModelName() string { return m.modelName }

// ProviderName implements llm.UnifiedModel.
func (m *Model) ProviderName() string { return llm.ProviderAnthropic }

// FormatPrompt implements llm.UnifiedModel.
func (m *Model) FormatPrompt(items []llm.ContentItem) (prompt.Payload, error) {
	return llm.FormatPrompt(items, llm.ProviderAnthropic, m.system)
}

// Invoke implements llm.UnifiedModel. It sends the prompt through the
// Messages API and returns the concatenated text blocks of the response.
func (m *Model) Invoke(ctx context.Context, p prompt.Payload) (string, error) {
	turns, err := llm.DecodePrompt(p)
	if err != nil {
		return "", err
	}

	var system []anthropic.TextBlockParam
	messages := make([]anthropic.MessageParam, 0, len(turns))
	for _, turn := range turns {
		if turn.Role == llm.RoleSystem {
			system = append(system, anthropic.TextBlockParam{
				Text:         turn.Text(),
				CacheControl: anthropic.NewCacheControlEphemeralParam(),
			})
			continue
		}
		blocks, err := toContentBlocks(turn.Parts)
		if err != nil {
			return "", err
		}
		messages = append(messages, anthropic.NewUserMessage(blocks...))
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(m.modelName),
		MaxTokens: m.maxTokens,
		Messages:  messages,
		System:    system,
	}
	if m.temperature != nil {
		params.Temperature = anthropic.Float(*m.temperature)
	}

	m.logger.Debug().Int("messages", len(messages)).Msg("Invoking Anthropic model")

	message, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return "", llm.NewInvocationError("anthropic invocation failed", err)
	}

	var text string
	for _, blockUnion := range message.Content {
		if block, ok := blockUnion.AsAny().(anthropic.TextBlock); ok {
			text += block.Text
		}
	}
	return text, nil
}

func toContentBlocks(parts []llm.PromptPart) ([]anthropic.ContentBlockParamUnion, error) {
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(parts))
	for _, part := range parts {
		switch part.Type {
		case "text":
			blocks = append(blocks, anthropic.NewTextBlock(part.Text))
		case "image":
			if part.Data == "" || part.MediaType == "" {
				return nil, llm.NewValidationError("image part has no base64 payload", nil)
			}
			blocks = append(blocks, anthropic.NewImageBlockBase64(part.MediaType, part.Data))
		default:
			return nil, llm.NewValidationError(fmt.Sprintf("unsupported prompt part type: %q", part.Type), nil)
		}
	}
	return blocks, nil
}
