package llm

import (
	"fmt"
	"sort"
	"sync"

	"dario.cat/mergo"
	"github.com/samber/lo"
)

// Factory maps provider keys to adapter constructors and holds per-provider
// default configuration. Registration is explicit and happens at startup
// (config.RegisterProviders wires the built-in providers); after that the
// table is read-mostly.
type Factory struct {
	mu            sync.RWMutex
	constructors  map[string]Constructor
	defaults      map[string]Options
	defaultModels map[string]string
}

// NewFactory creates an empty provider factory.
func NewFactory() *Factory {
	return &Factory{
		constructors:  make(map[string]Constructor),
		defaults:      make(map[string]Options),
		defaultModels: make(map[string]string),
	}
}

// Default is the process-wide factory. Populate it at startup, before
// steady-state traffic.
var Default = NewFactory()

// RegisterProvider adds or overwrites the constructor for a provider key.
// Overwriting supports runtime extension with custom providers.
func (f *Factory) RegisterProvider(provider string, ctor Constructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.constructors[provider] = ctor
}

// SetDefaults stores the provider's default model id and default options.
// Defaults fill only the option fields the caller leaves zero.
func (f *Factory) SetDefaults(provider, defaultModel string, opts Options) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.defaultModels[provider] = defaultModel
	f.defaults[provider] = opts
}

// Create resolves the provider from the model-name prefix and constructs the
// matching adapter. Caller options win over provider defaults.
func (f *Factory) Create(modelName string, opts Options) (UnifiedModel, error) {
	provider, err := ResolveProvider(modelName)
	if err != nil {
		return nil, err
	}
	return f.CreateForProvider(provider, modelName, opts)
}

// CreateForProvider constructs an adapter for an explicit provider key. This
// is the path for providers whose model names carry no reserved prefix. An
// empty modelName falls back to the provider's default model.
func (f *Factory) CreateForProvider(provider, modelName string, opts Options) (UnifiedModel, error) {
	f.mu.RLock()
	ctor, registered := f.constructors[provider]
	defaults := f.defaults[provider]
	defaultModel := f.defaultModels[provider]
	f.mu.RUnlock()

	if !registered {
		return nil, NewConfigError(fmt.Sprintf("provider %q is not registered (available: %v)", provider, f.Providers()), nil)
	}

	if modelName == "" {
		modelName = defaultModel
	}
	if modelName == "" {
		return nil, NewConfigError(fmt.Sprintf("no model specified and no default model for provider %q", provider), nil)
	}

	// mergo fills only zero fields, so explicit caller values survive.
	merged := opts
	if err := mergo.Merge(&merged, defaults); err != nil {
		return nil, NewConfigError("failed to merge provider defaults", err)
	}

	return ctor(modelName, merged)
}

// Providers returns the sorted keys of all registered providers.
func (f *Factory) Providers() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	providers := lo.Keys(f.constructors)
	sort.Strings(providers)
	return providers
}

// Reset clears all registered constructors and defaults. Intended for test
// isolation.
func (f *Factory) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.constructors = make(map[string]Constructor)
	f.defaults = make(map[string]Options)
	f.defaultModels = make(map[string]string)
}
