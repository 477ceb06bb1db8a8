package llm

import "fmt"

const (
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
	ProviderOpenAI    = "openai"
	ProviderOllama    = "ollama"
)

// providerPrefixes is the fixed, ordered model-name prefix table. Providers
// without a reserved prefix (Ollama) are reached by explicit provider key
// instead of model-name resolution.
var providerPrefixes = []struct {
	prefix   string
	provider string
}{
	{"claude-", ProviderAnthropic},
	{"gemini-", ProviderGoogle},
	{"gpt-", ProviderOpenAI},
}

// ResolveProvider determines the provider key from a model-name prefix.
// Unrecognized prefixes are a configuration error.
func ResolveProvider(modelName string) (string, error) {
	for _, entry := range providerPrefixes {
		if len(modelName) >= len(entry.prefix) && modelName[:len(entry.prefix)] == entry.prefix {
			return entry.provider, nil
		}
	}
	return "", NewConfigError(fmt.Sprintf("cannot determine provider for model %q", modelName), nil)
}
