package resolver

import (
	"sort"

	"github.com/narrativegraph/kgquery/pkg/types"
)

const multiHopAnswerCap = 5

var multiHopTriggerTypes = types.NewTypeSet(types.EventKill, types.EventDeath)
var multiHopConsequenceTypes = types.NewTypeSet(
	types.EventAppointedAs, types.EventCoronation, types.EventBoon,
	types.EventSupported, types.EventCommand, types.EventRescued,
)

// patientRoleTypes names the consequence types where the benefited
// party is the PATIENT rather than the AGENT (the recipient of a boon,
// an appointment, or a rescue, not the one granting it).
var patientRoleTypes = types.NewTypeSet(types.EventBoon, types.EventAppointedAs, types.EventRescued)

// resolveMultiHop partitions matched events into triggers and
// consequences, then ranks the consequence events' inferred
// beneficiaries (PERSON entities only) by frequency.
func resolveMultiHop(result *types.QueryResult) types.Answer {
	trace := []string{"[RESOLVE:MULTI_HOP] partitioning matched events"}

	seedSet := make(map[string]bool, len(result.SeedEntityIDs))
	for _, s := range result.SeedEntityIDs {
		seedSet[s] = true
	}

	var triggers, consequences []types.EventRef
	for _, event := range result.MatchedEvents {
		if _, ok := multiHopTriggerTypes[event.Type]; ok && anyParticipantSeed(event.Participants, seedSet) {
			triggers = append(triggers, event)
			continue
		}
		if _, ok := multiHopConsequenceTypes[event.Type]; ok {
			consequences = append(consequences, event)
		}
	}

	if len(triggers) == 0 || len(consequences) == 0 {
		trace = append(trace, "[RESOLVE:MULTI_HOP] trigger or consequence partition empty")
		return types.NoAnswer(trace, "no trigger/consequence pairing among the matched events")
	}
	trace = append(trace, "[RESOLVE:MULTI_HOP] triggers and consequences both non-empty, inferring beneficiaries")

	counts := make(map[string]int)
	eventBeneficiary := make(map[string]string)
	var order []string
	var supporting []string
	for _, event := range consequences {
		var beneficiaryID string
		var ok bool
		if _, usePatient := patientRoleTypes[event.Type]; usePatient {
			_, _, beneficiaryID, ok = inferRoles(event)
		} else {
			beneficiaryID, ok, _, _ = inferRoles(event)
		}
		if !ok {
			continue
		}
		entity, known := entityByID(result.MatchedEntities, beneficiaryID)
		if !known || entity.Kind != types.KindPerson {
			continue
		}
		if counts[beneficiaryID] == 0 {
			order = append(order, beneficiaryID)
		}
		counts[beneficiaryID]++
		eventBeneficiary[event.ID] = beneficiaryID
		trace = append(trace, "[RESOLVE:MULTI_HOP] event "+event.ID+" → beneficiary "+beneficiaryID)
	}

	if len(order) == 0 {
		trace = append(trace, "[RESOLVE:MULTI_HOP] no PERSON beneficiary could be inferred")
		return types.NoAnswer(trace, "consequence events yielded no PERSON beneficiary")
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > multiHopAnswerCap {
		order = order[:multiHopAnswerCap]
	}

	var entities []types.EntityCount
	kept := make(map[string]bool, len(order))
	for _, id := range order {
		kept[id] = true
		entity, _ := entityByID(result.MatchedEntities, id)
		entities = append(entities, types.EntityCount{ID: id, Name: entity.CanonicalName, Frequency: counts[id]})
	}
	for _, event := range consequences {
		if kept[eventBeneficiary[event.ID]] {
			supporting = append(supporting, event.ID)
		}
	}
	for _, event := range triggers {
		supporting = append(supporting, event.ID)
	}

	trace = append(trace, "[RESOLVE:MULTI_HOP] emitting ENTITY answer")
	return types.Answer{
		Type:               types.AnswerEntity,
		Payload:            types.AnswerPayload{Entities: entities},
		Confidence:         types.ConfidenceMedium,
		SupportingEventIDs: supporting,
		Trace:              trace,
	}
}
