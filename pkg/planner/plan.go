package planner

import (
	"regexp"
	"strings"

	"github.com/narrativegraph/kgquery/pkg/types"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalize lowercases and collapses whitespace ahead of every other
// planning step.
func normalize(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.ToLower(text), " "))
}

// Plan turns a question's raw text into a Query Plan: intent,
// seed entities, candidate event types, constraints, and traversal
// depth. It is a pure function of (questionText, registry) and never
// fails; unparseable input (text with no letters) yields intent=FACT,
// no seeds, no target types, and depth 1.
func Plan(questionText string, registry *types.RegistrySnapshot) *types.QueryPlan {
	normalized := normalize(questionText)

	intent := classifyIntent(normalized)
	seeds := extractSeeds(normalized, registry)
	defaults := defaultTargetTypes(intent)
	targets := narrowTargetTypes(normalized, defaults)
	if !tokenRe.MatchString(normalized) {
		targets = map[types.EventType]struct{}{}
	}
	constraints := inferConstraints(normalized, intent)
	depth := traversalDepth(intent)

	return &types.QueryPlan{
		Intent:           intent,
		SeedEntityIDs:    seeds,
		TargetEventTypes: targets,
		Constraints:      constraints,
		TraversalDepth:   depth,
	}
}
