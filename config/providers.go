package config

import (
	"github.com/rs/zerolog"

	"github.com/modelglue/modelglue/llm"
	"github.com/modelglue/modelglue/llm/anthropic"
	"github.com/modelglue/modelglue/llm/google"
	"github.com/modelglue/modelglue/llm/ollama"
	"github.com/modelglue/modelglue/llm/openai"
)

// RegisterProviders registers the four built-in provider constructors on the
// factory and seeds each provider's defaults from cfg. Registration is
// explicit and happens once at startup; nothing is created lazily.
func RegisterProviders(factory *llm.Factory, cfg *Config, logger zerolog.Logger) {
	factory.RegisterProvider(llm.ProviderAnthropic, anthropic.Constructor(logger))
	anthropicDefaults := cfg.ModelDefaultsFor(llm.ProviderAnthropic)
	factory.SetDefaults(llm.ProviderAnthropic, anthropicDefaults.Model, llm.Options{
		APIKey:    cfg.Anthropic.APIKey,
		MaxTokens: anthropicDefaults.MaxTokens,
	})

	factory.RegisterProvider(llm.ProviderOpenAI, openai.Constructor(logger))
	openaiDefaults := cfg.ModelDefaultsFor(llm.ProviderOpenAI)
	factory.SetDefaults(llm.ProviderOpenAI, openaiDefaults.Model, llm.Options{
		APIKey:       cfg.OpenAI.APIKey,
		BaseURL:      cfg.OpenAI.BaseURL,
		Organization: cfg.OpenAI.Organization,
		MaxTokens:    openaiDefaults.MaxTokens,
	})

	factory.RegisterProvider(llm.ProviderGoogle, google.Constructor(logger))
	googleDefaults := cfg.ModelDefaultsFor(llm.ProviderGoogle)
	factory.SetDefaults(llm.ProviderGoogle, googleDefaults.Model, llm.Options{
		APIKey:    cfg.Google.APIKey,
		BaseURL:   cfg.Google.BaseURL,
		MaxTokens: googleDefaults.MaxTokens,
	})

	factory.RegisterProvider(llm.ProviderOllama, ollama.Constructor(logger))
	ollamaDefaults := cfg.ModelDefaultsFor(llm.ProviderOllama)
	factory.SetDefaults(llm.ProviderOllama, ollamaDefaults.Model, llm.Options{
		Host:      cfg.Ollama.Host,
		MaxTokens: ollamaDefaults.MaxTokens,
	})
}
