// Package google implements the llm.UnifiedModel contract for Google's
// Gemini models through Gemini's OpenAI-compatible endpoint, reusing the
// openai adapter's chat protocol handling.
package google

import (
	"github.com/rs/zerolog"

	"github.com/modelglue/modelglue/llm"
	"github.com/modelglue/modelglue/llm/openai"
)

// DefaultBaseURL is Gemini's OpenAI-compatible API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// New creates a Google adapter for the given Gemini model. An API key is
// required; BaseURL defaults to the OpenAI-compatibility endpoint.
func New(modelName string, opts llm.Options, logger zerolog.Logger) (*openai.Model, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	return openai.NewCompatible(llm.ProviderGoogle, modelName, opts, logger)
}

// Constructor returns a factory constructor bound to the given logger.
func Constructor(logger zerolog.Logger) llm.Constructor {
	return func(modelName string, opts llm.Options) (llm.UnifiedModel, error) {
		return New(modelName, opts, logger)
	}
}
