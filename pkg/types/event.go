package types

import (
	"strconv"
	"strings"
)

// EventType is one of the 20 closed narrative event tags.
type EventType string

const (
	// MACRO events
	EventKill       EventType = "KILL"
	EventDeath      EventType = "DEATH"
	EventBattle     EventType = "BATTLE"
	EventCommand    EventType = "COMMAND"
	EventBoon       EventType = "BOON"
	EventVow        EventType = "VOW"
	EventCurse      EventType = "CURSE"
	EventCoronation EventType = "CORONATION"

	// MESO events
	EventEngagedInBattle EventType = "ENGAGED_IN_BATTLE"
	EventDefeated        EventType = "DEFEATED"
	EventProtected       EventType = "PROTECTED"
	EventPursued         EventType = "PURSUED"
	EventRescued         EventType = "RESCUED"
	EventAppointedAs     EventType = "APPOINTED_AS"
	EventAbandoned       EventType = "ABANDONED"
	EventAttacked        EventType = "ATTACKED"
	EventDefended        EventType = "DEFENDED"
	EventRetreated       EventType = "RETREATED"
	EventSurrounded      EventType = "SURROUNDED"
	EventSupported       EventType = "SUPPORTED"
)

// Tier is the MACRO/MESO classification of an event type.
type Tier string

const (
	TierMacro Tier = "MACRO"
	TierMeso  Tier = "MESO"
)

var macroTypes = map[EventType]bool{
	EventKill: true, EventDeath: true, EventBattle: true, EventCommand: true,
	EventBoon: true, EventVow: true, EventCurse: true, EventCoronation: true,
}

// TierOf derives the MACRO/MESO tier for an event type.
func TierOf(t EventType) Tier {
	if macroTypes[t] {
		return TierMacro
	}
	return TierMeso
}

// Event is a narrative occurrence with an ordered, deduplicated
// participant list and the sentence it was extracted from.
type Event struct {
	ID           string    `json:"id" yaml:"id"`
	Type         EventType `json:"type" yaml:"type"`
	Tier         Tier      `json:"tier" yaml:"tier"`
	Sentence     string    `json:"sentence" yaml:"sentence"`
	Participants []string  `json:"participants" yaml:"participants"`
}

// EventRef is the lightweight projection of an Event carried on a Query
// Result's matched-event list and an Answer's EVENT_LIST payload.
type EventRef struct {
	ID           string    `json:"id"`
	Tier         Tier      `json:"tier,omitempty"`
	Type         EventType `json:"type"`
	Participants []string  `json:"participants,omitempty"`
	Sentence     string    `json:"sentence"`
}

// Ref projects an Event down to its EventRef shape.
func (e *Event) Ref() EventRef {
	return EventRef{
		ID:           e.ID,
		Tier:         e.Tier,
		Type:         e.Type,
		Participants: e.Participants,
		Sentence:     e.Sentence,
	}
}

// Suffix parses the integer suffix of an event id of the form "E<int>".
// It is the sole temporal-ordering proxy available to the engine.
func Suffix(eventID string) (int, bool) {
	trimmed := strings.TrimPrefix(eventID, "E")
	if trimmed == eventID {
		return 0, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return n, true
}
