package graphstore

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"gopkg.in/yaml.v3"

	"github.com/narrativegraph/kgquery/pkg/types"
)

// Format selects the textual encoding of the three artifact files.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Paths names the three persisted artifacts the Store is built from.
type Paths struct {
	Entities string
	Events   string
	Edges    string
	Format   Format
}

type entityRecord struct {
	ID            string   `json:"id" yaml:"id"`
	CanonicalName string   `json:"canonical_name" yaml:"canonical_name"`
	Kind          string   `json:"kind" yaml:"kind"`
	EventCount    int      `json:"event_count" yaml:"event_count"`
	Aliases       []string `json:"aliases" yaml:"aliases"`
}

type eventRecord struct {
	ID           string   `json:"id" yaml:"id"`
	Type         string   `json:"type" yaml:"type"`
	Tier         string   `json:"tier" yaml:"tier"`
	Sentence     string   `json:"sentence" yaml:"sentence"`
	Participants []string `json:"participants" yaml:"participants"`
}

type edgeRecord struct {
	Source   string `json:"source" yaml:"source"`
	Relation string `json:"relation" yaml:"relation"`
	Target   string `json:"target" yaml:"target"`
	Evidence string `json:"evidence" yaml:"evidence"`
}

// Load reads, decodes, and validates the three artifacts named by
// paths, returning a fully-indexed, immutable Store. Any structural
// problem (missing file, malformed record, unknown referenced id,
// alias collision, non-unique event id, orphaned participant) is
// returned as a *types.LoadError; no query is ever accepted against a
// store that failed to load.
func Load(paths Paths) (*Store, error) {
	format := paths.Format
	if format == "" {
		format = formatFromExtension(paths.Entities)
	}

	var entityRecs []entityRecord
	if err := readArtifact(paths.Entities, format, &entityRecs); err != nil {
		return nil, err
	}
	var eventRecs []eventRecord
	if err := readArtifact(paths.Events, format, &eventRecs); err != nil {
		return nil, err
	}
	var edgeRecs []edgeRecord
	if err := readArtifact(paths.Edges, format, &edgeRecs); err != nil {
		return nil, err
	}

	entities := make(map[string]*types.Entity, len(entityRecs))
	aliasToID := make(map[string]string)
	for _, r := range entityRecs {
		if r.ID == "" {
			return nil, types.NewLoadError(paths.Entities, "entity record missing id", nil)
		}
		if _, dup := entities[r.ID]; dup {
			return nil, types.NewLoadError(paths.Entities, fmt.Sprintf("duplicate entity id %q", r.ID), nil)
		}
		aliases := normalizeAliases(r.Aliases, r.CanonicalName)
		for _, a := range aliases {
			if existing, collide := aliasToID[a]; collide && existing != r.ID {
				return nil, types.NewLoadError(paths.Entities, fmt.Sprintf("alias %q collides between %q and %q", a, existing, r.ID), nil)
			}
			aliasToID[a] = r.ID
		}
		entities[r.ID] = &types.Entity{
			ID:            r.ID,
			CanonicalName: strings.ToLower(r.CanonicalName),
			Kind:          types.EntityKind(r.Kind),
			EventCount:    r.EventCount,
			Aliases:       aliases,
		}
	}

	events := make(map[string]*types.Event, len(eventRecs))
	for _, r := range eventRecs {
		if r.ID == "" {
			return nil, types.NewLoadError(paths.Events, "event record missing id", nil)
		}
		if _, ok := types.Suffix(r.ID); !ok {
			return nil, types.NewLoadError(paths.Events, fmt.Sprintf("event id %q does not match /^E\\d+$/", r.ID), nil)
		}
		if _, dup := events[r.ID]; dup {
			return nil, types.NewLoadError(paths.Events, fmt.Sprintf("duplicate event id %q", r.ID), nil)
		}
		participants := dedupePreserveOrder(r.Participants)
		for _, p := range participants {
			if _, ok := entities[p]; !ok {
				return nil, types.NewLoadError(paths.Events, fmt.Sprintf("event %q references unknown entity %q", r.ID, p), nil)
			}
		}
		tier := types.Tier(r.Tier)
		if tier == "" {
			tier = types.TierOf(types.EventType(r.Type))
		}
		events[r.ID] = &types.Event{
			ID:           r.ID,
			Type:         types.EventType(r.Type),
			Tier:         tier,
			Sentence:     r.Sentence,
			Participants: participants,
		}
	}

	for _, r := range edgeRecs {
		ev, ok := events[r.Target]
		if !ok {
			return nil, types.NewLoadError(paths.Edges, fmt.Sprintf("edge references unknown event %q", r.Target), nil)
		}
		if _, ok := entities[r.Source]; !ok {
			return nil, types.NewLoadError(paths.Edges, fmt.Sprintf("edge references unknown entity %q", r.Source), nil)
		}
		if !contains(ev.Participants, r.Source) {
			return nil, types.NewLoadError(paths.Edges, fmt.Sprintf("edge (%s, %s) not reflected in event participants", r.Source, r.Target), nil)
		}
	}

	registryMap := make(map[string]types.EntityRef, len(aliasToID))
	for alias, id := range aliasToID {
		registryMap[alias] = entities[id].Ref()
	}

	return &Store{
		entitiesByID: entities,
		eventsByID:   events,
		aliasToID:    aliasToID,
		incidentTo:   buildIncidentIndex(events),
		registry:     types.NewRegistrySnapshot(registryMap),
	}, nil
}

func readArtifact(path string, format Format, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return types.NewLoadError(path, "unable to read file", err)
	}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(raw, out); err != nil {
			return types.NewLoadError(path, "malformed yaml record", err)
		}
	default:
		repaired, rerr := jsonrepair.JSONRepair(string(raw))
		if rerr != nil {
			// Repair itself failed; fall back to the raw bytes so the
			// json error below carries the original parse failure.
			repaired = string(raw)
		}
		if err := json.Unmarshal([]byte(repaired), out); err != nil {
			return types.NewLoadError(path, "malformed json record", err)
		}
	}
	return nil
}

func formatFromExtension(path string) Format {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

func normalizeAliases(aliases []string, canonicalName string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(aliases)+1)
	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}
	add(canonicalName)
	for _, a := range aliases {
		add(a)
	}
	return out
}

func dedupePreserveOrder(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
