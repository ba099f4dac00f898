package types

import "time"

// TraversalStats records how far and how wide an Executor strategy
// actually traveled, for introspection and the depth-bound invariant.
type TraversalStats struct {
	MaxDepth     int `json:"max_depth"`
	EventsVisited int `json:"events_visited"`
	EntitiesVisited int `json:"entities_visited"`
}

// QueryResult is the Executor's sole output.
type QueryResult struct {
	QuestionText       string           `json:"question_text"`
	Intent             Intent           `json:"intent"`
	Found              bool             `json:"found"`
	SeedEntityIDs      []string         `json:"seed_entity_ids"`
	MatchedEvents      []EventRef       `json:"matched_events"`
	MatchedEntities    []EntityRef      `json:"matched_entities"`
	ConstraintsApplied []string         `json:"constraints_applied"`
	Traversal          TraversalStats   `json:"traversal"`
	Trace              []string         `json:"trace"`
	Elapsed            time.Duration    `json:"elapsed"`
}

// EventByID returns the matched event with the given id, if present.
func (r *QueryResult) EventByID(id string) (EventRef, bool) {
	for _, e := range r.MatchedEvents {
		if e.ID == id {
			return e, true
		}
	}
	return EventRef{}, false
}
