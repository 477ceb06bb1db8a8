package prompt

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Resolver maps a model name (e.g. "gpt-4o") to a provider key (e.g.
// "openai"). It returns an error when the provider cannot be determined.
type Resolver func(modelOrProvider string) (string, error)

// Template owns the provider-specific variants of one logical prompt.
//
// The variable set is fixed by the first variant added; later variants whose
// placeholders differ are stored anyway but logged as drift, which catches
// prompt-author divergence across providers without blocking registration.
// Templates are built at startup and treated as read-only afterwards; adding
// variants concurrently requires external synchronization.
type Template struct {
	name        string
	description string
	variants    map[string]Payload
	vars        varSet
	defaultKey  string
	resolver    Resolver
	logger      zerolog.Logger
}

// NewTemplate creates an empty template with the given name and description.
func NewTemplate(name, description string, logger zerolog.Logger) *Template {
	return &Template{
		name:        name,
		description: description,
		variants:    make(map[string]Payload),
		vars:        make(varSet),
		logger:      logger.With().Str("template", name).Logger(),
	}
}

// Name returns the template's registry name.
func (t *Template) Name() string { return t.name }

// Description returns the template's description.
func (t *Template) Description() string { return t.description }

// Variables returns the sorted variable set fixed by the first variant.
func (t *Template) Variables() []string { return t.vars.sorted() }

// DefaultProvider returns the provider key of the first-added variant, or ""
// if no variant has been added.
func (t *Template) DefaultProvider() string { return t.defaultKey }

// AddVariant stores the payload as this template's variant for the provider.
// The first variant becomes the default and fixes the variable set. A later
// variant referencing a different set is still stored, but the mismatch is
// logged at warn level.
func (t *Template) AddVariant(provider string, payload Payload) {
	variantVars := make(varSet)
	if payload != nil {
		extract(payload, variantVars)
	}

	if len(t.variants) == 0 {
		t.defaultKey = provider
		t.vars = variantVars
	} else if !t.vars.equal(variantVars) {
		t.logger.Warn().
			Str("provider", provider).
			Strs("variant_variables", variantVars.sorted()).
			Strs("template_variables", t.vars.sorted()).
			Msg("Variant variable set differs from template variable set")
	}

	t.variants[provider] = payload
}

// SetResolver attaches a model-name resolver to this template.
func (t *Template) SetResolver(r Resolver) { t.resolver = r }

// HasResolver reports whether a resolver is attached.
func (t *Template) HasResolver() bool { return t.resolver != nil }

// ResolveProvider maps a model name or provider key to a provider key. An
// argument that already names a stored variant is returned unchanged. A
// resolver failure is logged and the argument is returned as-is, leaving
// pre-resolution to the caller.
func (t *Template) ResolveProvider(modelOrProvider string) string {
	if _, ok := t.variants[modelOrProvider]; ok {
		return modelOrProvider
	}
	if t.resolver != nil {
		provider, err := t.resolver(modelOrProvider)
		if err != nil {
			t.logger.Warn().Err(err).Str("model", modelOrProvider).Msg("Provider resolution failed")
		} else {
			return provider
		}
	}
	return modelOrProvider
}

// Variant returns a deep copy of the variant for the resolved provider. When
// no variant matches, the default variant is returned with a logged fallback
// notice; with no default either, an error is returned.
func (t *Template) Variant(modelOrProvider string) (Payload, error) {
	provider := t.ResolveProvider(modelOrProvider)

	if payload, ok := t.variants[provider]; ok {
		return payload.Clone(), nil
	}
	if t.defaultKey != "" {
		t.logger.Warn().
			Str("provider", provider).
			Str("default_provider", t.defaultKey).
			Msg("No variant for provider, falling back to default")
		return t.variants[t.defaultKey].Clone(), nil
	}
	return nil, fmt.Errorf("template %q: no variant for provider %q and no default set", t.name, provider)
}

// Format resolves the variant for modelOrProvider and binds values into it.
// Values must cover the template's full variable set; missing names fail with
// a MissingVariablesError before any binding happens.
func (t *Template) Format(modelOrProvider string, values map[string]string) (Payload, error) {
	if missing := t.vars.missing(values); len(missing) > 0 {
		return nil, &MissingVariablesError{Template: t.name, Missing: missing}
	}

	payload, err := t.Variant(modelOrProvider)
	if err != nil {
		return nil, err
	}
	return Bind(payload, values)
}
