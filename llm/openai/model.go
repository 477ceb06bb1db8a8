// Package openai implements the llm.UnifiedModel contract for OpenAI chat
// models. Because several providers expose OpenAI-compatible endpoints, the
// adapter can be constructed for a compatible provider key with a custom base
// URL (see the google package).
package openai

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/modelglue/modelglue/llm"
	"github.com/modelglue/modelglue/prompt"
)

// Model is the OpenAI adapter.
type Model struct {
	modelName   string
	provider    string
	system      string
	maxTokens   int64
	temperature *float64
	client      *openai.Client
	logger      zerolog.Logger
}

// New creates an OpenAI adapter for the given model. An API key is required;
// base URL and organization are optional.
func New(modelName string, opts llm.Options, logger zerolog.Logger) (*Model, error) {
	return NewCompatible(llm.ProviderOpenAI, modelName, opts, logger)
}

// NewCompatible creates an adapter speaking the OpenAI chat protocol under a
// different provider key, for providers with OpenAI-compatible endpoints.
func NewCompatible(provider, modelName string, opts llm.Options, logger zerolog.Logger) (*Model, error) {
	if opts.APIKey == "" {
		return nil, llm.NewConfigError(fmt.Sprintf("%s api key is required", provider), nil)
	}

	config := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		config.BaseURL = opts.BaseURL
	}
	if opts.Organization != "" {
		config.OrgID = opts.Organization
	}

	return &Model{
		modelName:   modelName,
		provider:    provider,
		system:      opts.System,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		client:      openai.NewClientWithConfig(config),
		logger:      logger.With().Str("provider", provider).Str("model", modelName).Logger(),
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
func (m *Model) ProviderName() string { return m.provider }

// FormatPrompt implements llm.UnifiedModel.
func (m *Model) FormatPrompt(items []llm.ContentItem) (prompt.Payload, error) {
	return llm.FormatPrompt(items, m.provider, m.system)
}

// Invoke implements llm.UnifiedModel. It sends the prompt as a chat
// completion request and returns the first choice's message content.
func (m *Model) Invoke(ctx context.Context, p prompt.Payload) (string, error) {
	turns, err := llm.DecodePrompt(p)
	if err != nil {
		return "", err
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, turn := range turns {
		if turn.Role == llm.RoleSystem {
			messages = append(messages, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleSystem,
				Content: turn.Text(),
			})
			continue
		}
		parts, err := toMessageParts(turn.Parts)
		if err != nil {
			return "", err
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:         openai.ChatMessageRoleUser,
			MultiContent: parts,
		})
	}

	req := openai.ChatCompletionRequest{
		Model:    m.modelName,
		Messages: messages,
	}
	if m.maxTokens > 0 {
		req.MaxTokens = int(m.maxTokens)
	}
	if m.temperature != nil {
		req.Temperature = float32(*m.temperature)
	}

	m.logger.Debug().Int("messages", len(messages)).Msg("Invoking chat completion")

	resp, err := m.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", llm.NewInvocationError(fmt.Sprintf("%s invocation failed", m.provider), err)
	}
	if len(resp.Choices) == 0 {
		return "", llm.NewInvocationError("no choices in response", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

func toMessageParts(parts []llm.PromptPart) ([]openai.ChatMessagePart, error) {
	out := make([]openai.ChatMessagePart, 0, len(parts))
	for _, part := range parts {
		switch part.Type {
		case "text":
			out = append(out, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeText,
				Text: part.Text,
			})
		case "image":
			if part.URL == "" {
				return nil, llm.NewValidationError("image part has no url", nil)
			}
			out = append(out, openai.ChatMessagePart{
				Type:     openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{URL: part.URL},
			})
		default:
			return nil, llm.NewValidationError(fmt.Sprintf("unsupported prompt part type: %q", part.Type), nil)
		}
	}
	return out, nil
}
