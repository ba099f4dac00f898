package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narrativegraph/kgquery/pkg/types"
)

func TestResolveFactWhoKilledKarna(t *testing.T) {
	plan := &types.QueryPlan{
		Intent:           types.IntentFact,
		TargetEventTypes: types.NewTypeSet(types.EventKill, types.EventDeath),
		Constraints:      types.Constraints{AgentRequired: true},
	}
	result := &types.QueryResult{
		Found:         true,
		SeedEntityIDs: []string{"person_karna"},
		MatchedEvents: []types.EventRef{
			{ID: "E500", Type: types.EventKill, Participants: []string{"person_arjuna", "person_karna"}},
		},
		MatchedEntities: []types.EntityRef{
			{ID: "person_arjuna", CanonicalName: "arjuna", Kind: types.KindPerson, EventCount: 5},
			{ID: "person_karna", CanonicalName: "karna", Kind: types.KindPerson, EventCount: 3},
		},
	}

	answer := Resolve(plan, result)

	require.Equal(t, types.AnswerEntity, answer.Type)
	require.Len(t, answer.Payload.Entities, 1)
	assert.Equal(t, "person_arjuna", answer.Payload.Entities[0].ID)
	assert.Equal(t, types.ConfidenceHigh, answer.Confidence)
	assert.Contains(t, answer.SupportingEventIDs, "E500")
}

func TestResolveTemporalAfterAbhimanyusDeath(t *testing.T) {
	plan := &types.QueryPlan{
		Intent:      types.IntentTemporal,
		Constraints: types.Constraints{TemporalOrder: types.OrderAfter},
	}
	result := &types.QueryResult{
		Found:         true,
		SeedEntityIDs: []string{"person_abhimanyu"},
		MatchedEvents: []types.EventRef{
			{ID: "E700", Type: types.EventDeath, Participants: []string{"person_abhimanyu"}},
			{ID: "E800", Type: types.EventBattle, Participants: []string{"person_arjuna", "person_duryodhana"}},
			{ID: "E900", Type: types.EventRetreated, Participants: []string{"person_duryodhana"}},
		},
	}

	answer := Resolve(plan, result)

	require.Equal(t, types.AnswerEventList, answer.Type)
	require.Len(t, answer.Payload.Events, 2)
	assert.Equal(t, "E800", answer.Payload.Events[0].ID)
	assert.Equal(t, "E900", answer.Payload.Events[1].ID)
	assert.Equal(t, types.ConfidenceMedium, answer.Confidence)
}

func TestResolveTemporalNoAnchorYieldsNoAnswer(t *testing.T) {
	plan := &types.QueryPlan{Intent: types.IntentTemporal, Constraints: types.Constraints{TemporalOrder: types.OrderAfter}}
	result := &types.QueryResult{
		Found:         true,
		SeedEntityIDs: []string{"person_abhimanyu"},
		MatchedEvents: []types.EventRef{
			{ID: "E900", Type: types.EventRetreated, Participants: []string{"person_duryodhana"}},
		},
	}

	answer := Resolve(plan, result)

	assert.Equal(t, types.AnswerNone, answer.Type)
	assert.Equal(t, types.ConfidenceHigh, answer.Confidence)
}

func TestResolveCausalBhishmaSupportsDuryodhana(t *testing.T) {
	plan := &types.QueryPlan{Intent: types.IntentCausal}
	result := &types.QueryResult{
		Found:         true,
		SeedEntityIDs: []string{"person_bhishma", "person_duryodhana"},
		MatchedEvents: []types.EventRef{
			{ID: "E100", Type: types.EventVow, Participants: []string{"person_bhishma"}},
			{ID: "E150", Type: types.EventSupported, Participants: []string{"person_bhishma", "person_duryodhana"}},
		},
		MatchedEntities: []types.EntityRef{
			{ID: "person_bhishma", CanonicalName: "bhishma", Kind: types.KindPerson},
			{ID: "person_duryodhana", CanonicalName: "duryodhana", Kind: types.KindPerson},
		},
	}

	answer := Resolve(plan, result)

	require.Equal(t, types.AnswerChain, answer.Type)
	require.Len(t, answer.Payload.Chain, 4)
	assert.Equal(t, types.ChainNodeEntity, answer.Payload.Chain[0].Kind)
	assert.Equal(t, "person_bhishma", answer.Payload.Chain[0].ID)
	assert.Equal(t, types.ChainNodeEvent, answer.Payload.Chain[1].Kind)
	assert.Equal(t, "E100", answer.Payload.Chain[1].ID)
	assert.Equal(t, types.ChainNodeEvent, answer.Payload.Chain[3].Kind)
	assert.Equal(t, "E150", answer.Payload.Chain[3].ID)
	assert.Equal(t, types.ConfidenceMedium, answer.Confidence)
}

func TestResolveCausalWithoutPriorYieldsShortChain(t *testing.T) {
	plan := &types.QueryPlan{Intent: types.IntentCausal}
	result := &types.QueryResult{
		Found:         true,
		SeedEntityIDs: []string{"person_bhishma"},
		MatchedEvents: []types.EventRef{
			{ID: "E150", Type: types.EventSupported, Participants: []string{"person_bhishma", "person_duryodhana"}},
		},
		MatchedEntities: []types.EntityRef{
			{ID: "person_bhishma", CanonicalName: "bhishma", Kind: types.KindPerson},
			{ID: "person_duryodhana", CanonicalName: "duryodhana", Kind: types.KindPerson},
		},
	}

	answer := Resolve(plan, result)

	require.Equal(t, types.AnswerChain, answer.Type)
	assert.Len(t, answer.Payload.Chain, 2)
	assert.Equal(t, types.ConfidenceLow, answer.Confidence)
}

func TestResolveMultiHopWhoBenefitedFromDronasDeath(t *testing.T) {
	plan := &types.QueryPlan{Intent: types.IntentMultiHop}
	result := &types.QueryResult{
		Found:         true,
		SeedEntityIDs: []string{"person_drona"},
		MatchedEvents: []types.EventRef{
			{ID: "E1000", Type: types.EventKill, Participants: []string{"person_dhrishtadyumna", "person_drona"}},
			{ID: "E1100", Type: types.EventAppointedAs, Participants: []string{"person_duryodhana", "person_dhrishtadyumna"}},
		},
		MatchedEntities: []types.EntityRef{
			{ID: "person_drona", CanonicalName: "drona", Kind: types.KindPerson},
			{ID: "person_dhrishtadyumna", CanonicalName: "dhrishtadyumna", Kind: types.KindPerson},
			{ID: "person_duryodhana", CanonicalName: "duryodhana", Kind: types.KindPerson},
		},
	}

	answer := Resolve(plan, result)

	require.Equal(t, types.AnswerEntity, answer.Type)
	require.Len(t, answer.Payload.Entities, 1)
	assert.Equal(t, "person_dhrishtadyumna", answer.Payload.Entities[0].ID)
	assert.Equal(t, types.ConfidenceMedium, answer.Confidence)
}

func TestResolveEmptyResultYieldsNoAnswer(t *testing.T) {
	plan := &types.QueryPlan{Intent: types.IntentFact}
	result := &types.QueryResult{Found: false}

	answer := Resolve(plan, result)

	assert.Equal(t, types.AnswerNone, answer.Type)
	assert.Equal(t, types.ConfidenceHigh, answer.Confidence)
	assert.Empty(t, answer.SupportingEventIDs)
}

func TestInferRolesFallbackForUntabledType(t *testing.T) {
	event := types.EventRef{Type: types.EventEngagedInBattle, Participants: []string{"a", "b"}}
	agent, agentOK, patient, patientOK := inferRoles(event)
	assert.True(t, agentOK)
	assert.Equal(t, "a", agent)
	assert.True(t, patientOK)
	assert.Equal(t, "b", patient)
}

func TestInferRolesFallbackSingleParticipant(t *testing.T) {
	event := types.EventRef{Type: types.EventPursued, Participants: []string{"a"}}
	agent, agentOK, patient, patientOK := inferRoles(event)
	assert.False(t, agentOK)
	assert.Equal(t, "", agent)
	assert.True(t, patientOK)
	assert.Equal(t, "a", patient)
}
