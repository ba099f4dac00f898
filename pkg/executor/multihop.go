package executor

import (
	"fmt"

	"github.com/narrativegraph/kgquery/pkg/graphstore"
	"github.com/narrativegraph/kgquery/pkg/types"
)

var triggerTypes = types.NewTypeSet(types.EventKill, types.EventDeath)

// consequenceTypes is fixed regardless of target_event_types: only a
// non-violent follow-up counts as a "benefit". KILL, DEATH, and BATTLE
// are excluded even if target_event_types would otherwise allow them,
// so a death-cascade is never counted as a consequence of itself.
var consequenceTypes = types.NewTypeSet(
	types.EventAppointedAs, types.EventCoronation, types.EventBoon,
	types.EventSupported, types.EventCommand, types.EventRescued,
)

// runMultiHop implements the MULTI_HOP strategy (depth ≥ 2) in two
// phases: trigger discovery (KILL/DEATH events a seed participates in)
// followed by consequence discovery (non-violent follow-up events
// among the triggers' other participants).
func runMultiHop(seeds []string, plan *types.QueryPlan, store *graphstore.Store) strategyResult {
	trace := []string{"[MULTI_HOP] consequence/benefit chain traversal (depth≥2)"}

	if len(seeds) == 0 {
		trace = append(trace, "[MULTI_HOP] no seed entities resolved")
		return strategyResult{trace: trace}
	}
	seedSet := make(map[string]bool, len(seeds))
	for _, s := range seeds {
		seedSet[s] = true
	}

	// Phase 1: trigger discovery.
	triggers := make(map[string]types.EventRef)
	for _, seedID := range seeds {
		for _, eventID := range store.EventsIncidentTo(seedID) {
			if _, ok := triggers[eventID]; ok {
				continue
			}
			event, err := store.EventByID(eventID)
			if err != nil {
				continue
			}
			if !plan.HasTargetType(event.Type) {
				continue
			}
			if _, isTrigger := triggerTypes[event.Type]; !isTrigger {
				continue
			}
			triggers[eventID] = event.Ref()
			trace = append(trace, fmt.Sprintf("[MULTI_HOP] phase 1: ✓ trigger event %s (%s)", eventID, event.Type))
		}
	}
	trace = append(trace, fmt.Sprintf("[MULTI_HOP] found %d trigger events", len(triggers)))

	if len(triggers) == 0 {
		trace = append(trace, "[MULTI_HOP] no triggers found, returning empty")
		return strategyResult{trace: trace, entitiesVisited: len(seedSet)}
	}

	// Collect trigger participants, excluding the seeds themselves.
	participants := make(map[string]bool)
	for _, event := range triggers {
		for _, p := range event.Participants {
			if seedSet[p] {
				continue
			}
			participants[p] = true
		}
	}
	trace = append(trace, fmt.Sprintf("[MULTI_HOP] phase 2: searching for consequences among %d participants", len(participants)))

	// Phase 2: consequence discovery.
	consequences := make(map[string]types.EventRef)
	for p := range participants {
		for _, eventID := range store.EventsIncidentTo(p) {
			if _, ok := triggers[eventID]; ok {
				continue
			}
			if _, ok := consequences[eventID]; ok {
				continue
			}
			event, err := store.EventByID(eventID)
			if err != nil {
				continue
			}
			// consequenceTypes never contains KILL, DEATH, or BATTLE, so
			// this membership check alone enforces the exclusion rule.
			if _, isConsequence := consequenceTypes[event.Type]; !isConsequence {
				continue
			}
			consequences[eventID] = event.Ref()
			trace = append(trace, fmt.Sprintf("[MULTI_HOP] phase 2: ✓ consequence event %s (%s)", eventID, event.Type))
		}
	}

	matched := make(map[string]types.EventRef, len(triggers)+len(consequences))
	for id, e := range triggers {
		matched[id] = e
	}
	for id, e := range consequences {
		matched[id] = e
	}
	events := eventsByIDAscending(matched)

	trace = append(trace, fmt.Sprintf("[MULTI_HOP] total matched: %d triggers + %d consequences", len(triggers), len(consequences)))

	return strategyResult{
		events:          events,
		trace:           trace,
		maxDepthReached: 2,
		entitiesVisited: len(seedSet) + len(participants),
	}
}
