package types

// AnswerType discriminates the Answer payload union.
type AnswerType string

const (
	AnswerEntity    AnswerType = "ENTITY"
	AnswerChain     AnswerType = "CHAIN"
	AnswerEventList AnswerType = "EVENT_LIST"
	AnswerNone      AnswerType = "NO_ANSWER"
)

// Confidence is a structurally-derived (not probabilistic) label.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// EntityCount pairs an entity with the frequency it was inferred in a
// given role (AGENT for FACT, BENEFICIARY for MULTI_HOP).
type EntityCount struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Frequency int    `json:"frequency"`
}

// ChainNodeKind discriminates a CHAIN node.
type ChainNodeKind string

const (
	ChainNodeEntity ChainNodeKind = "ENTITY"
	ChainNodeEvent  ChainNodeKind = "EVENT"
)

// ChainNode is one element of a CHAIN answer's alternating
// entity/event sequence.
type ChainNode struct {
	Kind ChainNodeKind `json:"kind"`
	ID   string        `json:"id"`
	// Name is populated for ENTITY nodes.
	Name string `json:"name,omitempty"`
	// Type is populated for EVENT nodes.
	Type EventType `json:"type,omitempty"`
}

// AnswerPayload is the union of the four possible Answer bodies. Exactly
// one field is meaningful per AnswerType; implementations must keep the
// discriminator and the populated field in agreement.
type AnswerPayload struct {
	// ENTITY
	Entities []EntityCount `json:"entities,omitempty"`
	// CHAIN
	Chain []ChainNode `json:"chain,omitempty"`
	// EVENT_LIST
	Events []EventRef `json:"events,omitempty"`
}

// Answer is the Resolver's sole output: a discriminated, structured,
// non-hallucinated response to the original question.
type Answer struct {
	Type                AnswerType    `json:"type"`
	Payload             AnswerPayload `json:"payload"`
	Confidence          Confidence    `json:"confidence"`
	SupportingEventIDs  []string      `json:"supporting_event_ids"`
	Trace               []string      `json:"trace"`
}

// NoAnswer constructs the NO_ANSWER variant with the given trace lines
// appended, always at high confidence: the engine is certain no answer
// exists, not merely unsure of one.
func NoAnswer(trace []string, reason string) Answer {
	return Answer{
		Type:               AnswerNone,
		Confidence:         ConfidenceHigh,
		SupportingEventIDs: nil,
		Trace:              append(append([]string{}, trace...), reason),
	}
}
