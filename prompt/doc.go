// Package prompt manages provider-specific prompt templates behind one
// logical name.
//
// A template variant is a Payload: a closed tree of string leaves, ordered
// sequences, ordered key/value mappings, and role-tagged message nodes.
// Placeholders use brace syntax ("Summarize {topic}") and are discovered by
// recursive extraction, bound by recursive substitution, and validated for
// completeness before any bind runs.
//
// A Template holds one variant per provider key and enforces that every
// variant references the variable set fixed by the first one (divergence is
// logged, not fatal). A Manager registers templates by unique name and shares
// a model-name→provider resolver across them.
//
// Registries are populated at startup and treated as read-only under
// concurrent load; Manager.Reset exists for test isolation.
package prompt
