// Package resolver reduces a Query Result to a structured Answer. It
// is a pure reduction: no further graph access beyond the matched
// events and entities already collected by the executor.
//
// Resolve never fails. On empty or incoherent input it returns the
// NO_ANSWER variant at high confidence ("we are sure we have no
// answer"), with a trace explaining why.
package resolver
