package planner

import (
	"regexp"

	"github.com/narrativegraph/kgquery/pkg/types"
)

var agentRequiredRe = regexp.MustCompile(`\b(kill|slew|slay|slain|murder)`)

// inferConstraints derives the agent-required, temporal-order, and
// causal-chain constraints from lexical cues and the classified intent.
func inferConstraints(normalized string, intent types.Intent) types.Constraints {
	return types.Constraints{
		AgentRequired: agentRequiredRe.MatchString(normalized),
		TemporalOrder: matchedTemporalOrder(normalized),
		CausalChain:   intent == types.IntentCausal,
	}
}

// traversalDepth caps how far the executor may hop from seed entities:
// FACT never traverses beyond the seed's own incident events; every
// other intent may hop one more level but never deeper.
func traversalDepth(intent types.Intent) int {
	if intent == types.IntentFact {
		return 1
	}
	return 2
}
