package resolver

import "github.com/narrativegraph/kgquery/pkg/types"

// Resolve reduces a Query Result to a structured Answer, dispatching
// by the plan's intent into one of four sub-resolvers. It never
// fails: an empty or incoherent result always yields a well-formed
// Answer, NO_ANSWER in the worst case.
func Resolve(plan *types.QueryPlan, result *types.QueryResult) types.Answer {
	if !result.Found || len(result.MatchedEvents) == 0 {
		return types.NoAnswer(nil, "the query result contains no matched events")
	}

	switch plan.Intent {
	case types.IntentFact:
		return resolveFact(plan, result)
	case types.IntentTemporal:
		return resolveTemporal(plan, result)
	case types.IntentCausal:
		return resolveCausal(result)
	case types.IntentMultiHop:
		return resolveMultiHop(result)
	default:
		return types.NoAnswer(nil, "unrecognized intent")
	}
}
