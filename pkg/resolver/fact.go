package resolver

import (
	"sort"

	"github.com/narrativegraph/kgquery/pkg/types"
)

// resolveFact infers the AGENT of each matched event (defense-in-depth
// filtering by target type and the agent_required constraint, which
// the executor already enforced), groups by agent id, and ranks by
// (frequency desc, incident-event count desc, id asc). Confidence is
// high for one unique agent, medium for up to three, low otherwise.
func resolveFact(plan *types.QueryPlan, result *types.QueryResult) types.Answer {
	trace := []string{"[RESOLVE:FACT] inferring agent from matched events"}

	counts := make(map[string]int)
	eventAgent := make(map[string]string)
	var order []string
	for _, event := range result.MatchedEvents {
		if !plan.HasTargetType(event.Type) {
			continue
		}
		if plan.Constraints.AgentRequired && len(event.Participants) < 2 {
			continue
		}
		agentID, ok, _, _ := inferRoles(event)
		if !ok {
			trace = append(trace, "[RESOLVE:FACT] event "+event.ID+": no agent role inferred, skipped")
			continue
		}
		entity, known := entityByID(result.MatchedEntities, agentID)
		if !known || entity.Kind != types.KindPerson {
			trace = append(trace, "[RESOLVE:FACT] event "+event.ID+": inferred agent is not a PERSON, skipped")
			continue
		}
		if counts[agentID] == 0 {
			order = append(order, agentID)
		}
		counts[agentID]++
		eventAgent[event.ID] = agentID
		trace = append(trace, "[RESOLVE:FACT] event "+event.ID+" → agent "+agentID)
	}

	if len(order) == 0 {
		return types.NoAnswer(trace, "no agents could be inferred from the matched events")
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		ea, _ := entityByID(result.MatchedEntities, a)
		eb, _ := entityByID(result.MatchedEntities, b)
		if ea.EventCount != eb.EventCount {
			return ea.EventCount > eb.EventCount
		}
		return a < b
	})

	top := order
	if len(top) > 2 {
		top = top[:2]
	}

	var entities []types.EntityCount
	var supporting []string
	inTop := make(map[string]bool, len(top))
	for _, id := range top {
		inTop[id] = true
		entity, _ := entityByID(result.MatchedEntities, id)
		entities = append(entities, types.EntityCount{ID: id, Name: entity.CanonicalName, Frequency: counts[id]})
	}
	for _, event := range result.MatchedEvents {
		if inTop[eventAgent[event.ID]] {
			supporting = append(supporting, event.ID)
		}
	}

	confidence := types.ConfidenceLow
	switch {
	case len(order) == 1:
		confidence = types.ConfidenceHigh
	case len(order) <= 3:
		confidence = types.ConfidenceMedium
	}

	trace = append(trace, "[RESOLVE:FACT] emitting ENTITY answer")
	return types.Answer{
		Type:               types.AnswerEntity,
		Payload:            types.AnswerPayload{Entities: entities},
		Confidence:         confidence,
		SupportingEventIDs: supporting,
		Trace:              trace,
	}
}

func entityByID(entities []types.EntityRef, id string) (types.EntityRef, bool) {
	for _, e := range entities {
		if e.ID == id {
			return e, true
		}
	}
	return types.EntityRef{}, false
}
