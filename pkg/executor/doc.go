// Package executor evaluates a Query Plan against a loaded Graph
// Store, returning every event that satisfies the plan's constraints
// without exceeding its traversal depth. There is no scoring or
// popularity-based pruning — only structural filtering and a decision
// trace explaining every accept/reject.
//
// Execute never fails: unresolved seeds, empty matches, and
// no-result intent/constraint combinations all surface as
// found=false with a full trace, never an error or panic. The only
// failures this package can produce are InternalInvariantViolation
// conditions that load validation should already have ruled out.
package executor
