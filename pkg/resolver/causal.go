package resolver

import (
	"github.com/narrativegraph/kgquery/pkg/types"
)

var supportClassTypes = types.NewTypeSet(types.EventSupported, types.EventDefended)
var priorEventTypes = types.NewTypeSet(types.EventVow, types.EventCommand, types.EventBoon)

// resolveCausal finds a SUPPORT-class event where a seed is the
// inferred agent, then looks for an earlier same-agent event of type
// VOW/COMMAND/BOON to prepend as the chain's motivating cause.
func resolveCausal(result *types.QueryResult) types.Answer {
	trace := []string{"[RESOLVE:CAUSAL] locating a support-class event with a seed agent"}

	seedSet := make(map[string]bool, len(result.SeedEntityIDs))
	for _, s := range result.SeedEntityIDs {
		seedSet[s] = true
	}

	var support *types.EventRef
	var agentID string
	for _, event := range result.MatchedEvents {
		if _, ok := supportClassTypes[event.Type]; !ok {
			continue
		}
		a, ok, _, _ := inferRoles(event)
		if !ok || !seedSet[a] {
			continue
		}
		e := event
		support = &e
		agentID = a
		break
	}

	if support == nil {
		trace = append(trace, "[RESOLVE:CAUSAL] no support-class event with a seed agent found")
		return types.NoAnswer(trace, "no SUPPORTED/DEFENDED event with a seed entity as agent")
	}
	trace = append(trace, "[RESOLVE:CAUSAL] support event="+support.ID+" agent="+agentID)

	supportSuffix, _ := types.Suffix(support.ID)

	var prior *types.EventRef
	var priorSuffix int
	for _, event := range result.MatchedEvents {
		if event.ID == support.ID {
			continue
		}
		if _, ok := priorEventTypes[event.Type]; !ok {
			continue
		}
		a, ok, _, _ := inferRoles(event)
		if !ok || a != agentID {
			continue
		}
		s, ok := types.Suffix(event.ID)
		if !ok || s >= supportSuffix {
			continue
		}
		if prior == nil || s > priorSuffix {
			e := event
			prior = &e
			priorSuffix = s
		}
	}

	agentEntity, _ := entityByID(result.MatchedEntities, agentID)
	_, _, patientID, patientOK := inferRoles(*support)

	var chain []types.ChainNode
	var supporting []string
	var confidence types.Confidence

	chain = append(chain, types.ChainNode{Kind: types.ChainNodeEntity, ID: agentID, Name: agentEntity.CanonicalName})

	if prior != nil {
		trace = append(trace, "[RESOLVE:CAUSAL] prior event="+prior.ID)
		chain = append(chain, types.ChainNode{Kind: types.ChainNodeEvent, ID: prior.ID, Type: prior.Type})
		if patientOK {
			patientEntity, _ := entityByID(result.MatchedEntities, patientID)
			chain = append(chain, types.ChainNode{Kind: types.ChainNodeEntity, ID: patientID, Name: patientEntity.CanonicalName})
		}
		chain = append(chain, types.ChainNode{Kind: types.ChainNodeEvent, ID: support.ID, Type: support.Type})
		supporting = []string{prior.ID, support.ID}
		confidence = types.ConfidenceMedium
	} else {
		trace = append(trace, "[RESOLVE:CAUSAL] no prior cause event found, chain length 2")
		chain = append(chain, types.ChainNode{Kind: types.ChainNodeEvent, ID: support.ID, Type: support.Type})
		supporting = []string{support.ID}
		confidence = types.ConfidenceLow
	}

	trace = append(trace, "[RESOLVE:CAUSAL] emitting CHAIN answer")
	return types.Answer{
		Type:               types.AnswerChain,
		Payload:            types.AnswerPayload{Chain: chain},
		Confidence:         confidence,
		SupportingEventIDs: supporting,
		Trace:              trace,
	}
}
