package resolver

import (
	"sort"

	"github.com/narrativegraph/kgquery/pkg/types"
)

const temporalAnswerCap = 5

var temporalAnchorTypes = types.NewTypeSet(types.EventDeath, types.EventBattle)

// resolveTemporal finds the earliest matched DEATH/BATTLE event
// touching a seed (the anchor), then filters the remaining matched
// events by their suffix relation to the anchor's suffix and returns
// up to 5 as an EVENT_LIST.
func resolveTemporal(plan *types.QueryPlan, result *types.QueryResult) types.Answer {
	trace := []string{"[RESOLVE:TEMPORAL] locating anchor event"}

	seedSet := make(map[string]bool, len(result.SeedEntityIDs))
	for _, s := range result.SeedEntityIDs {
		seedSet[s] = true
	}

	var anchor *types.EventRef
	var anchorSuffix int
	for _, event := range result.MatchedEvents {
		if _, ok := temporalAnchorTypes[event.Type]; !ok {
			continue
		}
		if !anyParticipantSeed(event.Participants, seedSet) {
			continue
		}
		s, ok := types.Suffix(event.ID)
		if !ok {
			continue
		}
		if anchor == nil || s < anchorSuffix {
			e := event
			anchor = &e
			anchorSuffix = s
		}
	}

	if anchor == nil {
		trace = append(trace, "[RESOLVE:TEMPORAL] no anchor event found among matched events")
		return types.NoAnswer(trace, "no DEATH/BATTLE anchor event touching a seed entity")
	}
	trace = append(trace, "[RESOLVE:TEMPORAL] anchor="+anchor.ID)

	order := plan.Constraints.TemporalOrder
	var filtered []types.EventRef
	for _, event := range result.MatchedEvents {
		if event.ID == anchor.ID {
			continue
		}
		s, ok := types.Suffix(event.ID)
		if !ok {
			continue
		}
		switch order {
		case types.OrderAfter:
			if s <= anchorSuffix {
				continue
			}
		case types.OrderBefore:
			if s >= anchorSuffix {
				continue
			}
		}
		filtered = append(filtered, event)
	}

	sort.Slice(filtered, func(i, j int) bool {
		si, _ := types.Suffix(filtered[i].ID)
		sj, _ := types.Suffix(filtered[j].ID)
		if order == types.OrderBefore {
			return si > sj
		}
		return si < sj
	})

	if len(filtered) > temporalAnswerCap {
		filtered = filtered[:temporalAnswerCap]
	}

	var supporting []string
	for _, e := range filtered {
		supporting = append(supporting, e.ID)
	}
	supporting = append(supporting, anchor.ID)

	trace = append(trace, "[RESOLVE:TEMPORAL] emitting EVENT_LIST answer")
	return types.Answer{
		Type:               types.AnswerEventList,
		Payload:            types.AnswerPayload{Events: filtered},
		Confidence:         types.ConfidenceMedium,
		SupportingEventIDs: supporting,
		Trace:              trace,
	}
}

func anyParticipantSeed(participants []string, seedSet map[string]bool) bool {
	for _, p := range participants {
		if seedSet[p] {
			return true
		}
	}
	return false
}
