package executor

import (
	"fmt"

	"github.com/narrativegraph/kgquery/pkg/graphstore"
	"github.com/narrativegraph/kgquery/pkg/types"
)

type causalQueueEntry struct {
	entityID string
	depth    int
}

// runCausal implements the CAUSAL strategy: breadth-first traversal
// from every resolved seed, bounded by plan.TraversalDepth, with a
// visited-entity set (never a visited-event set) guaranteeing
// termination. An event is accepted once, the first time any
// participant reaches it; its other participants are enqueued one
// level deeper if the depth budget allows.
func runCausal(seeds []string, plan *types.QueryPlan, store *graphstore.Store) strategyResult {
	trace := []string{"[CAUSAL] depth-limited causal traversal"}

	if len(seeds) == 0 {
		trace = append(trace, "[CAUSAL] no seed entities resolved")
		return strategyResult{trace: trace}
	}

	maxDepth := plan.TraversalDepth
	visited := make(map[string]bool, len(seeds))
	queue := make([]causalQueueEntry, 0, len(seeds))
	for _, seedID := range seeds {
		visited[seedID] = true
		queue = append(queue, causalQueueEntry{entityID: seedID, depth: 0})
	}

	matched := make(map[string]types.EventRef)
	maxDepthReached := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, eventID := range store.EventsIncidentTo(cur.entityID) {
			if _, ok := matched[eventID]; ok {
				continue
			}
			event, err := store.EventByID(eventID)
			if err != nil || !plan.HasTargetType(event.Type) {
				continue
			}

			matched[eventID] = event.Ref()
			if cur.depth > maxDepthReached {
				maxDepthReached = cur.depth
			}
			trace = append(trace, fmt.Sprintf("[CAUSAL] ✓ depth=%d event=%s", cur.depth, eventID))

			if cur.depth < maxDepth {
				for _, p := range event.Participants {
					if visited[p] {
						continue
					}
					visited[p] = true
					queue = append(queue, causalQueueEntry{entityID: p, depth: cur.depth + 1})
					trace = append(trace, fmt.Sprintf("[CAUSAL] → enqueue entity %s at depth=%d", p, cur.depth+1))
				}
			}
		}
	}

	events := eventsByIDAscending(matched)

	var constraintsApplied []string
	if plan.Constraints.CausalChain {
		constraintsApplied = append(constraintsApplied, "causal_chain")
	}

	trace = append(trace, fmt.Sprintf("[CAUSAL] total matched: %d events", len(events)))

	return strategyResult{
		events:             events,
		trace:              trace,
		constraintsApplied: constraintsApplied,
		maxDepthReached:    maxDepthReached,
		entitiesVisited:    len(visited),
	}
}
