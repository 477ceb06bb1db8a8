package prompt

import (
	"fmt"
	"strings"
)

// MissingVariablesError reports placeholders a template references that the
// supplied values do not cover. Missing is sorted.
type MissingVariablesError struct {
	Template string
	Missing  []string
}

// Error implements the error interface.
func (e *MissingVariablesError) Error() string {
	if e.Template != "" {
		return fmt.Sprintf("template %q: missing required variables: %s", e.Template, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("missing required variables: %s", strings.Join(e.Missing, ", "))
}

// Bind substitutes values into every named placeholder inside p and returns a
// new payload of identical shape. p is never mutated.
//
// The policy is strict on every path: a named placeholder absent from values
// fails with a MissingVariablesError. Unnamed placeholders ("{}", "{0}") are
// not substitution slots and pass through verbatim.
func Bind(p Payload, values map[string]string) (Payload, error) {
	if p == nil {
		return nil, nil
	}
	return bind(p, values)
}

func bind(p Payload, values map[string]string) (Payload, error) {
	switch v := p.(type) {
	case Text:
		return bindText(v, values)
	case Sequence:
		out := make(Sequence, len(v))
		for i, item := range v {
			bound, err := bind(item, values)
			if err != nil {
				return nil, err
			}
			out[i] = bound
		}
		return out, nil
	case Mapping:
		out := make(Mapping, len(v))
		for i, f := range v {
			bound, err := bind(f.Value, values)
			if err != nil {
				return nil, err
			}
			out[i] = Field{Key: f.Key, Value: bound}
		}
		return out, nil
	case Message:
		out := Message{Role: v.Role}
		if v.Content != nil {
			bound, err := bind(v.Content, values)
			if err != nil {
				return nil, err
			}
			out.Content = bound
		}
		return out, nil
	default:
		return p, nil
	}
}

func bindText(t Text, values map[string]string) (Payload, error) {
	var b strings.Builder
	for _, tok := range scan(string(t)) {
		if tok.name == "" {
			b.WriteString(tok.text)
			continue
		}
		value, ok := values[tok.name]
		if !ok {
			return nil, &MissingVariablesError{Missing: []string{tok.name}}
		}
		b.WriteString(value)
	}
	return Text(b.String()), nil
}
