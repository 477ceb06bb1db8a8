// Package config loads the orchestration layer's configuration: provider
// credentials and endpoints, per-provider model defaults, and the debug-mode
// flag for the workflow engine.
//
// Values come from three layers merged with mergo: built-in defaults, an
// optional YAML file, and environment variables, with later layers winning.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/modelglue/modelglue/llm"
)

// AnthropicConfig holds Anthropic provider settings.
type AnthropicConfig struct {
	APIKey string `yaml:"api_key,omitempty"`
}

// OpenAIConfig holds OpenAI provider settings.
type OpenAIConfig struct {
	APIKey       string `yaml:"api_key,omitempty"`
	BaseURL      string `yaml:"base_url,omitempty"`      // custom base URL (default: official API)
	Organization string `yaml:"organization,omitempty"`  // organization ID
}

// GoogleConfig holds Google (Gemini) provider settings.
type GoogleConfig struct {
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"` // default: Gemini's OpenAI-compatible endpoint
}

// OllamaConfig holds Ollama provider settings.
type OllamaConfig struct {
	Host string `yaml:"host,omitempty"` // default: OLLAMA_HOST or http://localhost:11434
}

// ModelDefaults holds a provider's default model id and token budget. The
// factory merges the token budget underneath caller options; the model id is
// used when a caller creates an adapter without naming a model.
type ModelDefaults struct {
	Model     string `yaml:"model,omitempty"`
	MaxTokens int64  `yaml:"max_tokens,omitempty"`
}

// Config is the full configuration surface of the orchestration layer.
type Config struct {
	Anthropic AnthropicConfig `yaml:"anthropic,omitempty"`
	OpenAI    OpenAIConfig    `yaml:"openai,omitempty"`
	Google    GoogleConfig    `yaml:"google,omitempty"`
	Ollama    OllamaConfig    `yaml:"ollama,omitempty"`

	// Models maps provider key to that provider's model defaults.
	Models map[string]ModelDefaults `yaml:"models,omitempty"`

	// Debug makes the workflow engine propagate node failures as raw errors
	// instead of capturing them into state.
	Debug bool `yaml:"debug,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Models: map[string]ModelDefaults{
			llm.ProviderOpenAI:    {Model: "gpt-4o", MaxTokens: 4000},
			llm.ProviderAnthropic: {Model: "claude-3-7-sonnet-latest", MaxTokens: 10000},
			llm.ProviderGoogle:    {Model: "gemini-2.5-pro-preview-03-25", MaxTokens: 8000},
			llm.ProviderOllama:    {Model: "llama3.2", MaxTokens: 4000},
		},
	}
}

// Load reads configuration from the given YAML file, layered over the
// built-in defaults and under environment variables. A missing file is not
// an error; an empty path skips the file layer entirely.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		fileCfg, err := loadFile(expandPath(path))
		if err != nil {
			return nil, err
		}
		if fileCfg != nil {
			if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge config file: %w", err)
			}
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-specified config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Anthropic.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.OpenAI.BaseURL = v
	}
	if v := os.Getenv("OPENAI_ORG_ID"); v != "" {
		cfg.OpenAI.Organization = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		cfg.Google.APIKey = v
	}
	if v := os.Getenv("OLLAMA_HOST"); v != "" {
		cfg.Ollama.Host = v
	}
	if v := os.Getenv("DEBUG_MODE"); v != "" {
		cfg.Debug = strings.EqualFold(v, "true") || v == "1"
	}
}

// ModelDefaultsFor returns the defaults for a provider, zero when the
// provider carries none.
func (c *Config) ModelDefaultsFor(provider string) ModelDefaults {
	return c.Models[provider]
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
