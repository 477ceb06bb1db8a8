// Package llm provides a provider-neutral abstraction layer for Large Language Model (LLM) APIs.
//
// This package defines the common types and interfaces that let the codebase
// talk to multiple LLM providers (Anthropic, OpenAI, Google, Ollama) without
// coupling to any specific provider's SDK.
//
// # Core Concepts
//
//  1. Content items: ContentItem is the provider-neutral prompt payload unit,
//     either a TextItem or an ImageItem (base64 data plus media type).
//
//  2. Provider formatting: FormatPrompt converts content items into the exact
//     nested structure a provider's chat API expects — a system turn (if any)
//     followed by one aggregated human turn. The result is a prompt.Payload,
//     the same closed tree the template engine produces, so templates and
//     formatted content flow through one type.
//
//  3. UnifiedModel: the adapter contract every provider implements. It exposes
//     the model identity, the provider key, FormatPrompt fixed to its own
//     provider, and Invoke, which performs the external call and returns the
//     textual response.
//
//  4. Factory: maps model names to providers by prefix (claude- → anthropic,
//     gemini- → google, gpt- → openai) and constructs the registered adapter
//     with provider defaults merged underneath caller options.
//
//  5. Errors: the Error type partitions failures into configuration,
//     validation, and invocation categories with errors.As-based helpers.
//
// # Extension Points
//
// To add a provider: implement UnifiedModel, write a Constructor closing over
// whatever credentials the SDK needs, and register it with
// Factory.RegisterProvider. Providers whose model names carry no reserved
// prefix (e.g. Ollama) are reached through Factory.CreateForProvider.
//
// Registration is explicit and happens at process startup, before steady-state
// traffic; the factory's mutex covers bring-up races, not a concurrency
// guarantee for continuous re-registration.
package llm
