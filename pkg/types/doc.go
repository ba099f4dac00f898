// Package types defines the shared data model for the query engine:
// entities, events, edges, query plans, query results, and answers.
//
// These types are pure data. None of them carry behavior beyond small
// accessor helpers; the Planner, Executor, and Resolver packages operate
// on them as immutable values. Entities and Events are owned by the
// Graph Store once loaded; Plans, Results, and Answers are constructed
// fresh per query and reference the store only by id.
package types
