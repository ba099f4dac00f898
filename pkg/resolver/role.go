package resolver

import "github.com/narrativegraph/kgquery/pkg/types"

// role is a participant's inferred function within an event. Neither
// the graph nor the executor store roles explicitly; the resolver
// derives them structurally from event type and participant position.
type role string

const (
	roleAgent   role = "AGENT"
	rolePatient role = "PATIENT"
	roleNone    role = ""
)

// rolePattern maps an event's first and (if present) second
// participant position to a role.
type rolePattern struct {
	pos1 role
	pos2 role
}

// roleTable is the static event-type -> position-role mapping. Event
// types not present here fall back to (AGENT, PATIENT) when the event
// has two or more participants, or (PATIENT, —) otherwise.
var roleTable = map[types.EventType]rolePattern{
	types.EventKill:        {roleAgent, rolePatient},
	types.EventDeath:       {rolePatient, roleNone},
	types.EventBattle:      {roleAgent, rolePatient},
	types.EventCoronation:  {roleAgent, rolePatient},
	types.EventSupported:   {roleAgent, rolePatient},
	types.EventDefended:    {roleAgent, rolePatient},
	types.EventBoon:        {roleAgent, rolePatient},
	types.EventVow:         {roleAgent, roleNone},
	types.EventCurse:       {roleAgent, rolePatient},
	types.EventAppointedAs: {roleAgent, rolePatient},
	types.EventCommand:     {roleAgent, rolePatient},
	types.EventRescued:     {roleAgent, rolePatient},
}

// inferRoles returns the entity id filling the AGENT and PATIENT roles
// for an event's participants, with ok flags for whether each role
// was actually filled.
func inferRoles(event types.EventRef) (agentID string, agentOK bool, patientID string, patientOK bool) {
	pattern, known := roleTable[event.Type]
	if !known {
		if len(event.Participants) >= 2 {
			pattern = rolePattern{roleAgent, rolePatient}
		} else {
			pattern = rolePattern{rolePatient, roleNone}
		}
	}

	assign := func(r role, participantID string) {
		switch r {
		case roleAgent:
			agentID, agentOK = participantID, true
		case rolePatient:
			patientID, patientOK = participantID, true
		}
	}

	if len(event.Participants) >= 1 {
		assign(pattern.pos1, event.Participants[0])
	}
	if len(event.Participants) >= 2 {
		assign(pattern.pos2, event.Participants[1])
	}
	return agentID, agentOK, patientID, patientOK
}
