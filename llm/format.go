package llm

import (
	"fmt"

	"github.com/modelglue/modelglue/prompt"
)

// Turn roles used in formatted prompts.
const (
	RoleSystem = "system"
	RoleHuman  = "human"
)

// FormatTextPart formats a text content item. The shape is the same for every
// supported provider.
func FormatTextPart(text string) prompt.Mapping {
	return prompt.Mapping{
		{Key: "type", Value: prompt.Text("text")},
		{Key: "text", Value: prompt.Text(text)},
	}
}

// FormatImagePart formats base64 image data into the provider-specific part
// shape: Anthropic uses a base64 source block, the OpenAI-compatible
// providers use a data URL.
func FormatImagePart(data, mediaType, provider string) (prompt.Mapping, error) {
	switch provider {
	case ProviderAnthropic:
		return prompt.Mapping{
			{Key: "type", Value: prompt.Text("image")},
			{Key: "source", Value: prompt.Mapping{
				{Key: "type", Value: prompt.Text("base64")},
				{Key: "media_type", Value: prompt.Text("image/" + mediaType)},
				{Key: "data", Value: prompt.Text(data)},
			}},
		}, nil
	case ProviderOpenAI, ProviderGoogle, ProviderOllama:
		return prompt.Mapping{
			{Key: "type", Value: prompt.Text("image_url")},
			{Key: "image_url", Value: prompt.Mapping{
				{Key: "url", Value: prompt.Text("data:image/" + mediaType + ";base64," + data)},
			}},
		}, nil
	default:
		return nil, NewConfigError(fmt.Sprintf("unsupported provider for image formatting: %q", provider), nil)
	}
}

// FormatPrompt converts provider-neutral content items into the nested
// structure the provider's chat API expects: an optional system turn first,
// then a single human turn aggregating all items in input order.
func FormatPrompt(items []ContentItem, provider, system string) (prompt.Payload, error) {
	switch provider {
	case ProviderAnthropic, ProviderOpenAI, ProviderGoogle, ProviderOllama:
	default:
		return nil, NewConfigError(fmt.Sprintf("unsupported provider: %q", provider), nil)
	}

	parts := make(prompt.Sequence, 0, len(items))
	for _, item := range items {
		switch item.Type {
		case ContentItemTypeText:
			parts = append(parts, FormatTextPart(item.Text))
		case ContentItemTypeImage:
			part, err := FormatImagePart(item.Data, item.MediaType, provider)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		default:
			return nil, NewValidationError(fmt.Sprintf("unknown content item type: %q", item.Type), nil)
		}
	}

	var turns prompt.Sequence
	if system != "" {
		turns = append(turns, prompt.Message{Role: RoleSystem, Content: prompt.Text(system)})
	}
	turns = append(turns, prompt.Message{Role: RoleHuman, Content: parts})
	return turns, nil
}
