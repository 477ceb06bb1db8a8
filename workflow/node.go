package workflow

import (
	"context"
	"reflect"
	"strings"
)

// Node is one atomic state-transforming step in a sequential pipeline.
type Node[S State[S]] interface {
	// Name identifies the node in execution history and error attribution.
	// An empty name falls back to the node's type name.
	Name() string

	// Validate checks preconditions on the state before Process runs.
	Validate(s S) error

	// Process transforms the state and returns the next state value. It must
	// not mutate s beyond the clone the engine already made for this step.
	Process(ctx context.Context, s S) (S, error)
}

// NodeFunc adapts plain functions into a Node.
type NodeFunc[S State[S]] struct {
	NodeName     string
	ValidateFunc func(s S) error
	ProcessFunc  func(ctx context.Context, s S) (S, error)
}

// Name implements Node.
func (n NodeFunc[S]) Name() string { return n.NodeName }

// Validate implements Node. A nil ValidateFunc accepts every state.
func (n NodeFunc[S]) Validate(s S) error {
	if n.ValidateFunc == nil {
		return nil
	}
	return n.ValidateFunc(s)
}

// Process implements Node.
func (n NodeFunc[S]) Process(ctx context.Context, s S) (S, error) {
	return n.ProcessFunc(ctx, s)
}

// nodeName returns the node's name, falling back to its type name.
func nodeName[S State[S]](n Node[S]) string {
	if name := n.Name(); name != "" {
		return name
	}
	t := reflect.TypeOf(n)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// NodeID returns the node's graph-vertex key: its name with spaces
// normalized to underscores.
func NodeID[S State[S]](n Node[S]) string {
	return strings.ReplaceAll(nodeName(n), " ", "_")
}
