package llm

import (
	"fmt"
	"strings"

	"github.com/modelglue/modelglue/prompt"
)

// PromptPart is one decoded content part of a prompt turn. For image parts
// both the base64 form (Data + MediaType) and the data-URL form are populated
// whenever one can be derived from the other, so every adapter can consume
// either shape.
type PromptPart struct {
	Type      string // "text" or "image"
	Text      string
	Data      string // base64 payload
	MediaType string // full mime type, e.g. "image/png"
	URL       string // data URL
}

// PromptTurn is one decoded message turn.
type PromptTurn struct {
	Role  string
	Parts []PromptPart
}

// Text returns the concatenated text of all text parts in the turn.
func (t PromptTurn) Text() string {
	var b strings.Builder
	for _, p := range t.Parts {
		if p.Type == "text" {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// DecodePrompt lowers a prompt payload into a flat list of turns that
// provider adapters translate into SDK calls. It accepts the structures the
// formatter and the template engine produce: a bare string, a message, a
// sequence of messages, or a sequence of content parts (treated as a single
// human turn).
func DecodePrompt(p prompt.Payload) ([]PromptTurn, error) {
	switch v := p.(type) {
	case nil:
		return nil, NewValidationError("empty prompt", nil)
	case prompt.Text:
		return []PromptTurn{{Role: RoleHuman, Parts: []PromptPart{{Type: "text", Text: string(v)}}}}, nil
	case prompt.Message:
		turn, err := decodeTurn(v)
		if err != nil {
			return nil, err
		}
		return []PromptTurn{turn}, nil
	case prompt.Sequence:
		var turns []PromptTurn
		var loose []PromptPart
		for _, item := range v {
			if msg, ok := item.(prompt.Message); ok {
				turn, err := decodeTurn(msg)
				if err != nil {
					return nil, err
				}
				turns = append(turns, turn)
				continue
			}
			parts, err := decodeParts(item)
			if err != nil {
				return nil, err
			}
			loose = append(loose, parts...)
		}
		if len(loose) > 0 {
			turns = append(turns, PromptTurn{Role: RoleHuman, Parts: loose})
		}
		return turns, nil
	default:
		return nil, NewValidationError(fmt.Sprintf("cannot decode prompt payload of type %T", p), nil)
	}
}

func decodeTurn(msg prompt.Message) (PromptTurn, error) {
	parts, err := decodeParts(msg.Content)
	if err != nil {
		return PromptTurn{}, err
	}
	role := msg.Role
	if role == "" {
		role = RoleHuman
	}
	return PromptTurn{Role: role, Parts: parts}, nil
}

func decodeParts(p prompt.Payload) ([]PromptPart, error) {
	switch v := p.(type) {
	case nil:
		return nil, nil
	case prompt.Text:
		return []PromptPart{{Type: "text", Text: string(v)}}, nil
	case prompt.Sequence:
		var parts []PromptPart
		for _, item := range v {
			sub, err := decodeParts(item)
			if err != nil {
				return nil, err
			}
			parts = append(parts, sub...)
		}
		return parts, nil
	case prompt.Mapping:
		part, err := decodePart(v)
		if err != nil {
			return nil, err
		}
		return []PromptPart{part}, nil
	default:
		return nil, NewValidationError(fmt.Sprintf("cannot decode content of type %T", p), nil)
	}
}

func decodePart(m prompt.Mapping) (PromptPart, error) {
	partType, _ := m.Get("type")
	switch partType {
	case prompt.Text("text"):
		text, _ := m.Get("text")
		leaf, ok := text.(prompt.Text)
		if !ok {
			return PromptPart{}, NewValidationError("text part has no text leaf", nil)
		}
		return PromptPart{Type: "text", Text: string(leaf)}, nil

	case prompt.Text("image"):
		source, ok := m.Get("source")
		sourceMap, isMap := source.(prompt.Mapping)
		if !ok || !isMap {
			return PromptPart{}, NewValidationError("image part has no source mapping", nil)
		}
		mediaType := textValue(sourceMap, "media_type")
		data := textValue(sourceMap, "data")
		return PromptPart{
			Type:      "image",
			Data:      data,
			MediaType: mediaType,
			URL:       "data:" + mediaType + ";base64," + data,
		}, nil

	case prompt.Text("image_url"):
		imageURL, ok := m.Get("image_url")
		urlMap, isMap := imageURL.(prompt.Mapping)
		if !ok || !isMap {
			return PromptPart{}, NewValidationError("image_url part has no image_url mapping", nil)
		}
		part := PromptPart{Type: "image", URL: textValue(urlMap, "url")}
		part.MediaType, part.Data = parseDataURL(part.URL)
		return part, nil

	default:
		return PromptPart{}, NewValidationError(fmt.Sprintf("unknown prompt part type: %v", partType), nil)
	}
}

func textValue(m prompt.Mapping, key string) string {
	if v, ok := m.Get(key); ok {
		if leaf, isText := v.(prompt.Text); isText {
			return string(leaf)
		}
	}
	return ""
}

// parseDataURL splits a "data:<mime>;base64,<data>" URL. Non-data URLs yield
// empty results; adapters that need raw bytes reject those themselves.
func parseDataURL(url string) (mediaType, data string) {
	rest, ok := strings.CutPrefix(url, "data:")
	if !ok {
		return "", ""
	}
	mediaType, data, ok = strings.Cut(rest, ";base64,")
	if !ok {
		return "", ""
	}
	return mediaType, data
}
