package types

// EntityKind is the closed set of entity categories.
type EntityKind string

const (
	KindPerson  EntityKind = "PERSON"
	KindGroup   EntityKind = "GROUP"
	KindPlace   EntityKind = "PLACE"
	KindTime    EntityKind = "TIME"
	KindLiteral EntityKind = "LITERAL"
)

// kindPriority ranks entity kinds PERSON > GROUP > PLACE > TIME >
// LITERAL. Lower value wins. Seed extraction in the planner does not
// consult it.
var kindPriority = map[EntityKind]int{
	KindPerson:  0,
	KindGroup:   1,
	KindPlace:   2,
	KindTime:    3,
	KindLiteral: 4,
}

// KindPriority returns the tie-break rank of a kind; unknown kinds sort last.
func KindPriority(k EntityKind) int {
	if p, ok := kindPriority[k]; ok {
		return p
	}
	return len(kindPriority)
}

// Entity is a narrative participant: a person, group, place, time, or
// abstract noun referenced by the corpus.
type Entity struct {
	ID            string     `json:"id" yaml:"id"`
	CanonicalName string     `json:"canonical_name" yaml:"canonical_name"`
	Kind          EntityKind `json:"kind" yaml:"kind"`
	EventCount    int        `json:"event_count" yaml:"event_count"`
	Aliases       []string   `json:"aliases" yaml:"aliases"`
}

// EntityRef is the lightweight projection of an Entity carried on a
// Query Result's matched-entity list.
type EntityRef struct {
	ID            string     `json:"id"`
	CanonicalName string     `json:"canonical_name"`
	Kind          EntityKind `json:"kind"`
	EventCount    int        `json:"event_count"`
}

// Ref projects an Entity down to its EntityRef shape.
func (e *Entity) Ref() EntityRef {
	return EntityRef{
		ID:            e.ID,
		CanonicalName: e.CanonicalName,
		Kind:          e.Kind,
		EventCount:    e.EventCount,
	}
}
