package graphstore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/narrativegraph/kgquery/pkg/types"
)

// Store is the load-once, read-only, in-memory index over the three
// persisted artifacts. It is safe for concurrent lookups.
type Store struct {
	entitiesByID map[string]*types.Entity
	eventsByID   map[string]*types.Event
	aliasToID    map[string]string
	incidentTo   map[string][]string // entity id -> sorted event ids
	registry     *types.RegistrySnapshot
}

// EntityByID returns the entity with the given id, or ErrNotFound.
func (s *Store) EntityByID(id string) (*types.Entity, error) {
	if e, ok := s.entitiesByID[id]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("entity %q: %w", id, types.ErrNotFound)
}

// EntityByAlias resolves a (case-insensitive) alias to an entity id,
// or ErrNotFound.
func (s *Store) EntityByAlias(alias string) (string, error) {
	id, ok := s.aliasToID[strings.ToLower(strings.TrimSpace(alias))]
	if !ok {
		return "", fmt.Errorf("alias %q: %w", alias, types.ErrNotFound)
	}
	return id, nil
}

// EventByID returns the event with the given id, or ErrNotFound.
func (s *Store) EventByID(id string) (*types.Event, error) {
	if e, ok := s.eventsByID[id]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("event %q: %w", id, types.ErrNotFound)
}

// EventsIncidentTo returns the ids of events entity_id participates in,
// sorted ascending by the event id's integer suffix.
func (s *Store) EventsIncidentTo(entityID string) []string {
	ids := s.incidentTo[entityID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// ParticipantsOf returns the ordered participant list of an event, or
// ErrNotFound if the event does not exist.
func (s *Store) ParticipantsOf(eventID string) ([]string, error) {
	e, err := s.EventByID(eventID)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(e.Participants))
	copy(out, e.Participants)
	return out, nil
}

// RegistrySnapshot returns the Planner-facing alias -> entity view
// derived once at load time.
func (s *Store) RegistrySnapshot() *types.RegistrySnapshot {
	return s.registry
}

// AllEvents returns every loaded event, sorted ascending by the event
// id's integer suffix. Used by strategies that must scan the full
// graph rather than a single entity's incident set (e.g. TEMPORAL).
func (s *Store) AllEvents() []*types.Event {
	out := make([]*types.Event, 0, len(s.eventsByID))
	for _, e := range s.eventsByID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		si, _ := types.Suffix(out[i].ID)
		sj, _ := types.Suffix(out[j].ID)
		return si < sj
	})
	return out
}

// EntityCount reports the number of loaded entities.
func (s *Store) EntityCount() int { return len(s.entitiesByID) }

// EventCount reports the number of loaded events.
func (s *Store) EventCount() int { return len(s.eventsByID) }

// buildIncidentIndex computes entity_id -> sorted event id list by a
// single scan over all events.
func buildIncidentIndex(events map[string]*types.Event) map[string][]string {
	byEntity := make(map[string][]string)
	for _, e := range events {
		for _, p := range e.Participants {
			byEntity[p] = append(byEntity[p], e.ID)
		}
	}
	for entityID, ids := range byEntity {
		sort.Slice(ids, func(i, j int) bool {
			si, _ := types.Suffix(ids[i])
			sj, _ := types.Suffix(ids[j])
			return si < sj
		})
		byEntity[entityID] = ids
	}
	return byEntity
}
