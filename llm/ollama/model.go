// Package ollama implements the llm.UnifiedModel contract for locally hosted
// models served by Ollama. Ollama model names carry no reserved prefix, so
// this adapter is reached through Factory.CreateForProvider rather than
// model-name resolution.
package ollama

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/rs/zerolog"

	"github.com/modelglue/modelglue/llm"
	"github.com/modelglue/modelglue/prompt"
)

// Model is the Ollama adapter.
type Model struct {
	modelName   string
	system      string
	maxTokens   int64
	temperature *float64
	client      *api.Client
	logger      zerolog.Logger
}

// New creates an Ollama adapter for the given model. An empty host falls back
// to the environment (OLLAMA_HOST, default http://localhost:11434).
func New(modelName string, opts llm.Options, logger zerolog.Logger) (*Model, error) {
	var client *api.Client
	if opts.Host != "" {
		baseURL, err := parseHost(opts.Host)
		if err != nil {
			return nil, llm.NewConfigError("invalid ollama host", err)
		}
		client = api.NewClient(baseURL, &http.Client{})
	} else {
		var err error
		client, err = api.ClientFromEnvironment()
		if err != nil {
			return nil, llm.NewConfigError("failed to create ollama client", err)
		}
	}

	return &Model{
		modelName:   modelName,
		system:      opts.System,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		client:      client,
		logger:      logger.With().Str("provider", llm.ProviderOllama).Str("model", modelName).Logger(),
	}, nil
}

// Constructor returns a factory constructor bound to the given logger.
func Constructor(logger zerolog.Logger) llm.Constructor {
	return func(modelName string, opts llm.Options) (llm.UnifiedModel, error) {
		return New(modelName, opts, logger)
	}
}

func parseHost(host string) (*url.URL, error) {
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return url.Parse(host)
}

// ModelName implements llm.UnifiedModel.
func (m *Model) ModelName() string { return m.modelName }

// ProviderName implements llm.UnifiedModel.
func (m *Model) ProviderName() string { return llm.ProviderOllama }

// FormatPrompt implements llm.UnifiedModel.
func (m *Model) FormatPrompt(items []llm.ContentItem) (prompt.Payload, error) {
	return llm.FormatPrompt(items, llm.ProviderOllama, m.system)
}

// Invoke implements llm.UnifiedModel. It issues a non-streaming chat request
// and returns the response message content.
func (m *Model) Invoke(ctx context.Context, p prompt.Payload) (string, error) {
	turns, err := llm.DecodePrompt(p)
	if err != nil {
		return "", err
	}

	messages := make([]api.Message, 0, len(turns))
	for _, turn := range turns {
		if turn.Role == llm.RoleSystem {
			messages = append(messages, api.Message{Role: "system", Content: turn.Text()})
			continue
		}
		msg := api.Message{Role: "user", Content: turn.Text()}
		for _, part := range turn.Parts {
			if part.Type != "image" {
				continue
			}
			if part.Data == "" {
				return "", llm.NewValidationError("image part has no base64 payload", nil)
			}
			raw, err := base64.StdEncoding.DecodeString(part.Data)
			if err != nil {
				return "", llm.NewValidationError("image part is not valid base64", err)
			}
			msg.Images = append(msg.Images, api.ImageData(raw))
		}
		messages = append(messages, msg)
	}

	req := &api.ChatRequest{
		Model:    m.modelName,
		Messages: messages,
		Stream:   new(bool), // non-streaming
		Options:  make(map[string]interface{}),
	}
	if m.maxTokens > 0 {
		req.Options["num_predict"] = int(m.maxTokens)
	}
	if m.temperature != nil {
		req.Options["temperature"] = *m.temperature
	}

	m.logger.Debug().Int("messages", len(messages)).Msg("Invoking Ollama model")

	var content string
	err = m.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		content += resp.Message.Content
		return nil
	})
	if err != nil {
		return "", llm.NewInvocationError(fmt.Sprintf("ollama chat request failed for model %q", m.modelName), err)
	}
	return content, nil
}
