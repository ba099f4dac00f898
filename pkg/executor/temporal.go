package executor

import (
	"fmt"

	"github.com/narrativegraph/kgquery/pkg/graphstore"
	"github.com/narrativegraph/kgquery/pkg/types"
)

const temporalResultCap = 20

// runTemporal implements the TEMPORAL strategy (depth 2). It builds
// the anchor set — events incident to a seed whose type is in
// target_event_types — takes the minimum anchor suffix (AFTER/DURING)
// or the maximum (BEFORE), then scans every event in the graph and
// accepts those whose suffix satisfies the requested temporal_order
// relative to that anchor. Results are capped at 20.
func runTemporal(seeds []string, plan *types.QueryPlan, store *graphstore.Store) strategyResult {
	order := plan.Constraints.TemporalOrder
	trace := []string{fmt.Sprintf("[TEMPORAL] lookup with temporal_order=%q", order)}

	if len(seeds) == 0 {
		trace = append(trace, "[TEMPORAL] no seed entities resolved")
		return strategyResult{trace: trace}
	}

	var anchorSuffixes []int
	for _, seedID := range seeds {
		for _, eventID := range store.EventsIncidentTo(seedID) {
			event, err := store.EventByID(eventID)
			if err != nil || !plan.HasTargetType(event.Type) {
				continue
			}
			if s, ok := types.Suffix(eventID); ok {
				anchorSuffixes = append(anchorSuffixes, s)
			}
		}
	}
	trace = append(trace, fmt.Sprintf("[TEMPORAL] found %d anchor events", len(anchorSuffixes)))

	if len(anchorSuffixes) == 0 {
		trace = append(trace, "[TEMPORAL] no anchor events, returning empty")
		return strategyResult{trace: trace, entitiesVisited: len(seeds)}
	}

	anchor := anchorSuffixes[0]
	for _, s := range anchorSuffixes {
		switch order {
		case types.OrderBefore:
			if s > anchor {
				anchor = s
			}
		default:
			if s < anchor {
				anchor = s
			}
		}
	}

	matched := make(map[string]types.EventRef)
	for _, event := range store.AllEvents() {
		s, ok := types.Suffix(event.ID)
		if !ok || !plan.HasTargetType(event.Type) {
			continue
		}
		var accept bool
		switch order {
		case types.OrderAfter:
			accept = s > anchor
		case types.OrderBefore:
			accept = s < anchor
		case types.OrderDuring:
			accept = s == anchor
		default:
			continue
		}
		if !accept {
			continue
		}
		matched[event.ID] = event.Ref()
		trace = append(trace, fmt.Sprintf("[TEMPORAL] ✓ event %s is %s anchor=%d", event.ID, order, anchor))
		if len(matched) >= temporalResultCap {
			trace = append(trace, fmt.Sprintf("[TEMPORAL] capped at %d events", temporalResultCap))
			break
		}
	}

	events := eventsByIDAscending(matched)
	if order == types.OrderBefore {
		reverse(events)
	}

	var constraintsApplied []string
	if order != "" {
		constraintsApplied = append(constraintsApplied, "temporal_order")
	}

	trace = append(trace, fmt.Sprintf("[TEMPORAL] total matched: %d events", len(events)))

	return strategyResult{
		events:             events,
		trace:              trace,
		constraintsApplied: constraintsApplied,
		maxDepthReached:    2,
		entitiesVisited:    len(seeds),
	}
}

func reverse(events []types.EventRef) {
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
}
