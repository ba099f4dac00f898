package planner

import (
	"regexp"
	"strings"

	"github.com/narrativegraph/kgquery/pkg/types"
)

var tokenRe = regexp.MustCompile(`[a-z]+`)

var stopwords = map[string]bool{
	"i": true, "me": true, "my": true, "he": true, "she": true, "him": true,
	"her": true, "they": true, "them": true, "who": true, "whom": true,
	"what": true, "when": true, "where": true, "why": true, "how": true,
	"the": true, "a": true, "an": true, "of": true, "to": true, "from": true,
	"in": true, "on": true, "by": true, "and": true, "or": true,
}

const maxWindow = 3

// extractSeeds tokenizes on non-letter boundaries, greedily matches the
// longest alias window (1..3 tokens) at each position, skips stopwords,
// and dedupes by entity id preserving first-hit order. The registry's
// alias map is one-to-one, so a window resolves to at most one entity.
// Overlapping windows are settled by position alone (the leftmost
// match wins, and the longest one at that position); entity kind is
// not consulted.
func extractSeeds(normalized string, registry *types.RegistrySnapshot) []string {
	tokens := tokenRe.FindAllString(normalized, -1)

	seen := make(map[string]bool)
	var out []string

	i := 0
	for i < len(tokens) {
		matched := false
		for length := maxWindow; length >= 1; length-- {
			if i+length > len(tokens) {
				continue
			}
			window := tokens[i : i+length]
			if length == 1 && stopwords[window[0]] {
				continue
			}
			phrase := strings.Join(window, " ")
			ref, ok := registry.Lookup(phrase)
			if !ok {
				continue
			}
			if !seen[ref.ID] {
				seen[ref.ID] = true
				out = append(out, ref.ID)
			}
			i += length
			matched = true
			break
		}
		if !matched {
			i++
		}
	}

	return out
}
