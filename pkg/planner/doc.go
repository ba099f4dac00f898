// Package planner turns free-form question text and an entity registry
// snapshot into a deterministic Query Plan: intent, seed entities,
// target event types, constraints, and traversal depth.
//
// Plan is a pure function: no I/O, no learned models, no global state.
// The same (text, registry) pair always produces the same plan.
package planner
