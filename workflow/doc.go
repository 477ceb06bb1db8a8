// Package workflow provides a small sequential pipeline engine that threads
// a versioned state value through a chain of processing nodes.
//
// A state is any pointer type embedding Core (the engine's bookkeeping:
// error, metadata, execution history, debug info) that knows how to deep-copy
// itself. States are copy-on-write: every step clones before mutating, so no
// two steps ever share a mutable value and histories stay consistent across
// replays.
//
// A node performs one state transformation. The engine wraps each node with
// validation and error capture: a failing node ends the run with the error
// recorded in state (node name plus cause, and an entry under
// metadata error details), unless debug mode is on, in which case the raw
// error propagates for full stack visibility.
//
// Execution is single-threaded and synchronous. Independent runs may proceed
// concurrently as long as each owns its own state value.
package workflow
