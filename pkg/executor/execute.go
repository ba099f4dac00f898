package executor

import (
	"fmt"
	"sort"
	"time"

	"github.com/narrativegraph/kgquery/pkg/graphstore"
	"github.com/narrativegraph/kgquery/pkg/types"
)

// strategyResult is the common shape every intent strategy reduces to
// before the shared post-processing (entity extraction, constraint
// bookkeeping, result assembly) runs.
type strategyResult struct {
	events             []types.EventRef
	trace              []string
	constraintsApplied []string
	maxDepthReached    int
	entitiesVisited    int
}

// Execute evaluates plan against store, producing a Query Result. It
// never panics or returns an error: every failure mode this component
// can encounter is absorbed into found=false plus a trace.
func Execute(plan *types.QueryPlan, store *graphstore.Store, questionText string) *types.QueryResult {
	start := time.Now()

	trace := []string{
		fmt.Sprintf("[START] executing %s query with max_depth=%d", plan.Intent, plan.TraversalDepth),
		fmt.Sprintf("[SEEDS] seed_entity_ids=%v", plan.SeedEntityIDs),
		fmt.Sprintf("[TARGET] event_types=%v", sortedTypeNames(plan.TargetTypesList())),
		fmt.Sprintf("[CONSTRAINTS] agent_required=%v temporal_order=%q causal_chain=%v",
			plan.Constraints.AgentRequired, plan.Constraints.TemporalOrder, plan.Constraints.CausalChain),
	}

	resolved, resolveTrace := resolveSeeds(plan.SeedEntityIDs, store)
	trace = append(trace, resolveTrace...)

	var sr strategyResult
	switch plan.Intent {
	case types.IntentFact:
		sr = runFact(resolved, plan, store)
	case types.IntentTemporal:
		sr = runTemporal(resolved, plan, store)
	case types.IntentCausal:
		sr = runCausal(resolved, plan, store)
	case types.IntentMultiHop:
		sr = runMultiHop(resolved, plan, store)
	default:
		sr = strategyResult{trace: []string{fmt.Sprintf("[ERROR] unknown intent %q", plan.Intent)}}
	}
	trace = append(trace, sr.trace...)

	matchedEntities := extractEntities(sr.events, store)

	trace = append(trace, fmt.Sprintf("[RESULT] found %d events, %d entities", len(sr.events), len(matchedEntities)))

	return &types.QueryResult{
		QuestionText:       questionText,
		Intent:             plan.Intent,
		Found:              len(sr.events) > 0,
		SeedEntityIDs:      resolved,
		MatchedEvents:      sr.events,
		MatchedEntities:    matchedEntities,
		ConstraintsApplied: sr.constraintsApplied,
		Traversal: types.TraversalStats{
			MaxDepth:        sr.maxDepthReached,
			EventsVisited:   len(sr.events),
			EntitiesVisited: sr.entitiesVisited,
		},
		Trace:   trace,
		Elapsed: time.Since(start),
	}
}

// resolveSeeds validates that every seed id the Planner produced still
// exists in the Graph Store, tracing a [RESOLVE] line for each. The
// Planner is the component that turns question text into entity ids
// (it already drops tokens it cannot match); this step re-confirms
// each id resolves against the store the plan is executed against, so
// a stale or foreign plan degrades to found=false rather than a panic.
func resolveSeeds(seedIDs []string, store *graphstore.Store) ([]string, []string) {
	var resolved []string
	var trace []string
	for _, id := range seedIDs {
		if _, err := store.EntityByID(id); err != nil {
			trace = append(trace, fmt.Sprintf("[RESOLVE] %s → UNRESOLVED", id))
			continue
		}
		trace = append(trace, fmt.Sprintf("[RESOLVE] %s → %s", id, id))
		resolved = append(resolved, id)
	}
	return resolved, trace
}

// extractEntities walks every matched event's participant list in
// order, resolves each via the store, and dedupes by id in first-seen
// order.
func extractEntities(events []types.EventRef, store *graphstore.Store) []types.EntityRef {
	seen := make(map[string]bool)
	var out []types.EntityRef
	for _, e := range events {
		for _, p := range e.Participants {
			if seen[p] {
				continue
			}
			entity, err := store.EntityByID(p)
			if err != nil {
				continue
			}
			seen[p] = true
			out = append(out, entity.Ref())
		}
	}
	return out
}

// eventsByIDAscending converts an id->EventRef accumulator map into a
// slice ordered ascending by event id integer suffix.
func eventsByIDAscending(byID map[string]types.EventRef) []types.EventRef {
	out := make([]types.EventRef, 0, len(byID))
	for _, e := range byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		si, _ := types.Suffix(out[i].ID)
		sj, _ := types.Suffix(out[j].ID)
		return si < sj
	})
	return out
}

func sortedTypeNames(ts []types.EventType) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, string(t))
	}
	sort.Strings(out)
	return out
}
