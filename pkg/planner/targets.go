package planner

import (
	"regexp"

	"github.com/narrativegraph/kgquery/pkg/types"
)

// defaultTargetTypes returns the per-intent starting set of candidate
// event types, before any lexical narrowing.
func defaultTargetTypes(intent types.Intent) map[types.EventType]struct{} {
	switch intent {
	case types.IntentFact:
		return types.NewTypeSet(types.EventKill, types.EventDeath, types.EventBattle, types.EventCoronation, types.EventAppointedAs)
	case types.IntentCausal:
		return types.NewTypeSet(types.EventSupported, types.EventDefended, types.EventVow, types.EventCommand)
	case types.IntentTemporal:
		return types.NewTypeSet(types.EventDeath, types.EventBattle, types.EventRetreated)
	case types.IntentMultiHop:
		return types.NewTypeSet(types.EventKill, types.EventDeath, types.EventBoon, types.EventCurse)
	default:
		return map[types.EventType]struct{}{}
	}
}

var (
	killCueRe       = regexp.MustCompile(`\b(kill|slew|slay|slain)\b`)
	deathCueRe      = regexp.MustCompile(`\b(die|died|death)\b`)
	coronationCueRe = regexp.MustCompile(`\b(crown|coronation)\b`)
	supportCueRe    = regexp.MustCompile(`\b(support|side with)\b`)
)

// narrowTargetTypes narrows the default type set using lexical cues in
// the question. A cue only takes effect if it intersects the default
// set; narrowing never empties the set outright.
func narrowTargetTypes(normalized string, defaults map[types.EventType]struct{}) map[types.EventType]struct{} {
	forced := map[types.EventType]struct{}{}
	if killCueRe.MatchString(normalized) {
		forced[types.EventKill] = struct{}{}
	}
	if deathCueRe.MatchString(normalized) {
		forced[types.EventDeath] = struct{}{}
	}
	if coronationCueRe.MatchString(normalized) {
		forced[types.EventCoronation] = struct{}{}
	}
	if supportCueRe.MatchString(normalized) {
		forced[types.EventSupported] = struct{}{}
	}

	if len(forced) == 0 {
		return defaults
	}

	narrowed := map[types.EventType]struct{}{}
	for t := range defaults {
		if _, ok := forced[t]; ok {
			narrowed[t] = struct{}{}
		}
	}
	if len(narrowed) == 0 {
		// Narrowing would empty the set: keep the default.
		return defaults
	}
	return narrowed
}
