package types

import "sort"

// Intent is the closed set of question intents the Planner classifies
// free-form text into.
type Intent string

const (
	IntentFact     Intent = "FACT"
	IntentTemporal Intent = "TEMPORAL"
	IntentCausal   Intent = "CAUSAL"
	IntentMultiHop Intent = "MULTI_HOP"
)

// TemporalOrder is the relation a TEMPORAL query asks to filter by,
// relative to an anchor event.
type TemporalOrder string

const (
	OrderBefore TemporalOrder = "BEFORE"
	OrderAfter  TemporalOrder = "AFTER"
	OrderDuring TemporalOrder = "DURING"
)

// Constraints narrows the Executor's acceptance criteria. Each field is
// optional; the zero value means "not specified", except TemporalOrder
// which uses "" as unset.
type Constraints struct {
	AgentRequired bool          `json:"agent_required"`
	TemporalOrder TemporalOrder `json:"temporal_order,omitempty"`
	CausalChain   bool          `json:"causal_chain"`
}

// QueryPlan is the Planner's sole output: everything the Executor needs
// to traverse the graph, with no further reference to the original text.
type QueryPlan struct {
	Intent           Intent                 `json:"intent"`
	SeedEntityIDs    []string               `json:"seed_entity_ids"`
	TargetEventTypes map[EventType]struct{} `json:"-"`
	Constraints      Constraints            `json:"constraints"`
	TraversalDepth   int                    `json:"traversal_depth"`
}

// HasTargetType reports whether t is in the plan's target event type set.
// An empty target set matches everything (see FACT executor rule).
func (p *QueryPlan) HasTargetType(t EventType) bool {
	if len(p.TargetEventTypes) == 0 {
		return true
	}
	_, ok := p.TargetEventTypes[t]
	return ok
}

// TargetTypesList returns the target event type set as a sorted-by-name
// slice, for serialization and tracing.
func (p *QueryPlan) TargetTypesList() []EventType {
	out := make([]EventType, 0, len(p.TargetEventTypes))
	for t := range p.TargetEventTypes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NewTypeSet builds a target-event-type set from a variadic list.
func NewTypeSet(types ...EventType) map[EventType]struct{} {
	set := make(map[EventType]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}
