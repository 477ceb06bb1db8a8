package prompt

// Payload is the closed set of shapes a template variant can be built from:
// a string leaf, an ordered sequence, an ordered key/value mapping, or a
// role-tagged message node. Extraction and binding recurse over exactly these
// four shapes, so adding a shape means extending both.
type Payload interface {
	// Clone returns a deep copy. Callers that hand payloads out across an API
	// boundary clone first so the stored variant can never be mutated.
	Clone() Payload

	isPayload()
}

// Text is a string leaf. Placeholders use brace syntax: "{name}".
type Text string

func (t Text) isPayload() {}

// Clone implements Payload.
func (t Text) Clone() Payload { return t }

// Sequence is an ordered list of payloads.
type Sequence []Payload

func (s Sequence) isPayload() {}

// Clone implements Payload.
func (s Sequence) Clone() Payload {
	if s == nil {
		return Sequence(nil)
	}
	out := make(Sequence, len(s))
	for i, item := range s {
		out[i] = item.Clone()
	}
	return out
}

// Field is a single key/value entry of a Mapping.
type Field struct {
	Key   string
	Value Payload
}

// Mapping is an ordered key→payload map. Keys are structural, never scanned
// for placeholders.
type Mapping []Field

func (m Mapping) isPayload() {}

// Clone implements Payload.
func (m Mapping) Clone() Payload {
	if m == nil {
		return Mapping(nil)
	}
	out := make(Mapping, len(m))
	for i, f := range m {
		out[i] = Field{Key: f.Key, Value: f.Value.Clone()}
	}
	return out
}

// Get returns the value for key and whether it was present.
func (m Mapping) Get(key string) (Payload, bool) {
	for _, f := range m {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Message is a role-tagged node wrapping a content payload, mirroring a chat
// API message. The role is structural, never scanned for placeholders.
type Message struct {
	Role    string
	Content Payload
}

func (m Message) isPayload() {}

// Clone implements Payload.
func (m Message) Clone() Payload {
	out := Message{Role: m.Role}
	if m.Content != nil {
		out.Content = m.Content.Clone()
	}
	return out
}
