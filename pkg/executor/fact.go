package executor

import (
	"fmt"

	"github.com/narrativegraph/kgquery/pkg/graphstore"
	"github.com/narrativegraph/kgquery/pkg/types"
)

// runFact implements the FACT strategy (depth 1): for each resolved
// seed, enumerate its incident events and accept those whose type is
// in target_event_types (or the set is empty) and, when
// agent_required is set, that have at least two participants. The
// matched set is the union across seeds, deduplicated by event id.
func runFact(seeds []string, plan *types.QueryPlan, store *graphstore.Store) strategyResult {
	trace := []string{"[FACT] direct entity lookup"}

	if len(seeds) == 0 {
		trace = append(trace, "[FACT] no seed entities resolved")
		return strategyResult{trace: trace}
	}

	matched := make(map[string]types.EventRef)
	agentFiltered := false

	for _, seedID := range seeds {
		incident := store.EventsIncidentTo(seedID)
		trace = append(trace, fmt.Sprintf("[FACT] entity %s: %d incident events", seedID, len(incident)))

		for _, eventID := range incident {
			if _, ok := matched[eventID]; ok {
				continue
			}
			event, err := store.EventByID(eventID)
			if err != nil {
				trace = append(trace, fmt.Sprintf("[FACT] event %s not found", eventID))
				continue
			}
			if !plan.HasTargetType(event.Type) {
				trace = append(trace, fmt.Sprintf("[FACT] event %s type %s not in target set", eventID, event.Type))
				continue
			}
			if plan.Constraints.AgentRequired && len(event.Participants) < 2 {
				agentFiltered = true
				trace = append(trace, fmt.Sprintf("[FACT] event %s rejected: agent_required but only %d participant(s)", eventID, len(event.Participants)))
				continue
			}
			trace = append(trace, fmt.Sprintf("[FACT] ✓ event %s matched (%s)", eventID, event.Type))
			matched[eventID] = event.Ref()
		}
	}

	var constraintsApplied []string
	if agentFiltered {
		constraintsApplied = append(constraintsApplied, "agent_required")
	}

	events := eventsByIDAscending(matched)
	trace = append(trace, fmt.Sprintf("[FACT] total matched: %d events", len(events)))

	return strategyResult{
		events:             events,
		trace:              trace,
		constraintsApplied: constraintsApplied,
		maxDepthReached:    1,
		entitiesVisited:    len(seeds),
	}
}
