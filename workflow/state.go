package workflow

import (
	"maps"
	"slices"

	"github.com/samber/lo"
)

// State is the contract pipeline states satisfy. S is the concrete state
// type (a pointer type embedding Core), so Clone returns the caller's own
// type and node code never downcasts.
//
// The engine treats states as immutable values: it clones before every
// mutation and never writes through a state it was handed. Clone must deep
// copy everything the state owns, including the embedded Core (CloneCore).
type State[S any] interface {
	// Clone returns a deep copy of the state.
	Clone() S

	// GetCore exposes the engine's bookkeeping fields. Embedding Core
	// provides this method.
	GetCore() *Core
}

// Core carries the bookkeeping every pipeline state needs: the terminal
// error, free-form metadata, the ordered list of executed nodes, and debug
// information collected during a run. Application states embed Core and add
// their own domain fields.
type Core struct {
	Error         string
	Metadata      map[string]any
	ExecutedNodes []string
	DebugInfo     map[string]any
}

// GetCore implements the State contract for embedders.
func (c *Core) GetCore() *Core { return c }

// CloneCore returns a deep copy of the bookkeeping fields. State types call
// this from their Clone implementation.
func (c *Core) CloneCore() Core {
	out := Core{
		Error:         c.Error,
		Metadata:      maps.Clone(c.Metadata),
		ExecutedNodes: slices.Clone(c.ExecutedNodes),
		DebugInfo:     maps.Clone(c.DebugInfo),
	}
	// error_details is written by the engine, so it needs its own copy.
	if details, ok := out.Metadata[errorDetailsKey].(map[string]string); ok {
		out.Metadata[errorDetailsKey] = maps.Clone(details)
	}
	return out
}

// Failed reports whether a terminal error has been recorded.
func (c *Core) Failed() bool { return c.Error != "" }

// errorDetailsKey is the metadata key under which per-node error messages
// are recorded.
const errorDetailsKey = "error_details"

// TrackExecution appends the node name to the execution history. The append
// is idempotent: a name already present is not appended again.
func (c *Core) TrackExecution(node string) {
	if lo.Contains(c.ExecutedNodes, node) {
		return
	}
	c.ExecutedNodes = append(c.ExecutedNodes, node)
}

// RecordError sets the terminal error and, when a node name is given, files
// the message under metadata's error details keyed by node.
func (c *Core) RecordError(message, node string) {
	c.Error = message
	if node == "" {
		return
	}
	if c.Metadata == nil {
		c.Metadata = make(map[string]any)
	}
	details, ok := c.Metadata[errorDetailsKey].(map[string]string)
	if !ok {
		details = make(map[string]string)
		c.Metadata[errorDetailsKey] = details
	}
	details[node] = message
}

// ErrorDetails returns the per-node error messages recorded so far.
func (c *Core) ErrorDetails() map[string]string {
	details, _ := c.Metadata[errorDetailsKey].(map[string]string)
	return details
}

// AddDebugInfo records a key/value pair in the state's debug information.
func (c *Core) AddDebugInfo(key string, value any) {
	if c.DebugInfo == nil {
		c.DebugInfo = make(map[string]any)
	}
	c.DebugInfo[key] = value
}
