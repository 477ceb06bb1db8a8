package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// settings holds the knobs shared by workflow constructors.
type settings struct {
	debug  bool
	logger zerolog.Logger
}

// Option configures a workflow.
type Option func(*settings)

// WithDebug controls error escalation. In debug mode a node failure
// propagates as a raw error from Run instead of being captured into state,
// giving full visibility during development.
func WithDebug(debug bool) Option {
	return func(s *settings) { s.debug = debug }
}

// WithLogger sets the workflow's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// Sequential executes nodes strictly in order on the caller's goroutine,
// stopping at the first node that records an error. No branching, no loops,
// no parallel fan-out.
type Sequential[S State[S]] struct {
	name     string
	nodes    []Node[S]
	settings settings
}

// NewSequential creates a sequential workflow over the given nodes.
func NewSequential[S State[S]](name string, nodes []Node[S], opts ...Option) *Sequential[S] {
	s := settings{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&s)
	}
	return &Sequential[S]{name: name, nodes: nodes, settings: s}
}

// Name returns the workflow name.
func (w *Sequential[S]) Name() string { return w.name }

// Run executes the chain to completion or first error and returns the final
// state. A run whose state carries an empty error is a success; a non-empty
// error is a reported failure with the failing node's name embedded. Run
// itself only returns a non-nil error in debug mode, when node failures
// propagate raw.
func (w *Sequential[S]) Run(ctx context.Context, initial S) (S, error) {
	runID := uuid.NewString()
	logger := w.settings.logger.With().Str("workflow", w.name).Str("run_id", runID).Logger()

	state := initial.Clone()
	state.GetCore().AddDebugInfo("run_id", runID)

	for _, node := range w.nodes {
		if state.GetCore().Failed() {
			logger.Warn().Str("error", state.GetCore().Error).Msg("Stopping run after error")
			break
		}
		next, err := w.step(ctx, logger, node, state)
		if err != nil {
			return next, err
		}
		state = next
	}
	return state, nil
}

// step executes one node with validation and error capture. All node-level
// failures funnel through capture, the single choke point deciding between
// state capture and raw propagation.
func (w *Sequential[S]) step(ctx context.Context, logger zerolog.Logger, node Node[S], s S) (S, error) {
	name := nodeName(node)
	logger.Info().Str("node", name).Msg("Executing node")

	next := s.Clone()
	next.GetCore().TrackExecution(name)

	if err := node.Validate(next); err != nil {
		return w.capture(logger, name, next, err)
	}

	out, err := node.Process(ctx, next)
	if err != nil {
		return w.capture(logger, name, next, err)
	}

	logger.Info().Str("node", name).Msg("Node completed")
	return out, nil
}

func (w *Sequential[S]) capture(logger zerolog.Logger, name string, s S, err error) (S, error) {
	logger.Error().Err(err).Str("node", name).Msg("Node failed")

	if w.settings.debug {
		return s, fmt.Errorf("node %s: %w", name, err)
	}

	failed := s.Clone()
	failed.GetCore().RecordError(fmt.Sprintf("error in %s: %v", name, err), name)
	return failed, nil
}
