package planner

import (
	"regexp"

	"github.com/narrativegraph/kgquery/pkg/types"
)

var (
	causalRe   = regexp.MustCompile(`\b(why|because|reason)\b`)
	temporalRe = regexp.MustCompile(`\b(before|after|during|first|last|then)\b`)
	multiHopRe = regexp.MustCompile(`\b(benefit(ed|s)?|consequence(s)?|impact(ed|s)?|led to|result(ed)? in|gained|advantage)\b`)
)

// classifyIntent checks cues in priority order: CAUSAL, then TEMPORAL,
// then MULTI_HOP, then FACT as the default. MULTI_HOP is tested before
// falling through to FACT so "who benefited from X" is not mis-tagged
// as a simple who-question.
func classifyIntent(normalized string) types.Intent {
	switch {
	case causalRe.MatchString(normalized):
		return types.IntentCausal
	case temporalRe.MatchString(normalized):
		return types.IntentTemporal
	case multiHopRe.MatchString(normalized):
		return types.IntentMultiHop
	default:
		return types.IntentFact
	}
}

// matchedTemporalOrder extracts which temporal keyword matched, for
// constraint inference. Returns "" if none matched.
func matchedTemporalOrder(normalized string) types.TemporalOrder {
	switch {
	case regexp.MustCompile(`\b(before|first)\b`).MatchString(normalized):
		return types.OrderBefore
	case regexp.MustCompile(`\b(after|then|last)\b`).MatchString(normalized):
		return types.OrderAfter
	case regexp.MustCompile(`\bduring\b`).MatchString(normalized):
		return types.OrderDuring
	default:
		return ""
	}
}
