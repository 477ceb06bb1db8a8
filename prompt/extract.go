package prompt

import (
	"sort"
	"strings"
)

// token is one scanned piece of a template string: either literal text
// (name == "", braces already unescaped) or a placeholder (text holds the raw
// placeholder including braces, name holds the variable name, empty for bare
// or positional placeholders).
type token struct {
	text string
	name string
}

// scan splits a template string into literal and placeholder tokens using
// brace-delimited field syntax. "{{" and "}}" are literal braces. An opening
// brace with no closing brace is kept as literal text.
func scan(s string) []token {
	var toks []token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			toks = append(toks, token{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(s); {
		switch s[i] {
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				lit.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(s[i+1:], '}')
			if end < 0 {
				lit.WriteString(s[i:])
				i = len(s)
				continue
			}
			flush()
			raw := s[i : i+end+2]
			toks = append(toks, token{text: raw, name: fieldName(s[i+1 : i+end+1])})
			i += end + 2
		case '}':
			if i+1 < len(s) && s[i+1] == '}' {
				lit.WriteByte('}')
				i += 2
				continue
			}
			lit.WriteByte('}')
			i++
		default:
			lit.WriteByte(s[i])
			i++
		}
	}
	flush()
	return toks
}

// fieldName reduces a raw placeholder field to its variable name. Conversion
// and format-spec suffixes ("!r", ":>10") are stripped, as are attribute and
// index accesses. Bare ("{}") and positional ("{0}") fields have no name and
// yield "".
func fieldName(field string) string {
	if i := strings.IndexAny(field, "!:"); i >= 0 {
		field = field[:i]
	}
	if i := strings.IndexAny(field, ".["); i >= 0 {
		field = field[:i]
	}
	if field == "" || isDigits(field) {
		return ""
	}
	return field
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// varSet is the set of placeholder names referenced by a payload.
type varSet map[string]struct{}

func (v varSet) equal(other varSet) bool {
	if len(v) != len(other) {
		return false
	}
	for name := range v {
		if _, ok := other[name]; !ok {
			return false
		}
	}
	return true
}

// missing returns the sorted names in v absent from values.
func (v varSet) missing(values map[string]string) []string {
	var out []string
	for name := range v {
		if _, ok := values[name]; !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func (v varSet) sorted() []string {
	out := make([]string, 0, len(v))
	for name := range v {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// extract collects placeholder names from p into vars. Sequence elements and
// mapping values are recursed into; mapping keys and message roles are
// structural and never scanned.
func extract(p Payload, vars varSet) {
	switch v := p.(type) {
	case Text:
		for _, tok := range scan(string(v)) {
			if tok.name != "" {
				vars[tok.name] = struct{}{}
			}
		}
	case Sequence:
		for _, item := range v {
			extract(item, vars)
		}
	case Mapping:
		for _, f := range v {
			extract(f.Value, vars)
		}
	case Message:
		if v.Content != nil {
			extract(v.Content, vars)
		}
	}
}

// Variables returns the sorted set of placeholder names referenced anywhere
// inside p. It never modifies p.
func Variables(p Payload) []string {
	vars := make(varSet)
	if p != nil {
		extract(p, vars)
	}
	return vars.sorted()
}
