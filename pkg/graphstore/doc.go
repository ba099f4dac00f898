// Package graphstore loads the three persisted corpus artifacts
// (entities, events, participation edges) into an immutable, indexed,
// in-memory structure and offers O(1) lookups against it.
//
// # Supported Formats
//
// Artifacts may be encoded as JSON or YAML, selected by file extension
// or by explicit Format. Bytes are first run through a tolerant JSON
// repair pass (for the JSON format) so that minor corpus-builder
// corruption does not block a load that would otherwise succeed.
//
// # Thread Safety
//
// A *Store is built once by Load and never mutated afterward. All
// lookup methods are safe for concurrent use by multiple queries.
//
// # Reload
//
// Reload is guarded by a circuit breaker: a run of failed reloads
// (e.g. a corpus builder mid-write) trips the breaker open so callers
// fail fast instead of retry-storming a known-bad source.
package graphstore
