package dto

import (
	"errors"
	"strings"

	"github.com/narrativegraph/kgquery/pkg/types"
)

// MaxQuestionLength bounds the accepted question text; the planner is
// a pure tokenizer with no inherent limit, but an HTTP boundary needs
// one to reject obviously malformed requests early.
const MaxQuestionLength = 2000

// ErrQuestionTooLong is returned by Validate when Question exceeds
// MaxQuestionLength.
var ErrQuestionTooLong = errors.New("question exceeds maximum length")

// QuestionRequest is the POST /api/v1/query request body.
type QuestionRequest struct {
	Question string `json:"question" binding:"required"`
}

// Validate performs request-boundary validation on QuestionRequest.
func (q *QuestionRequest) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return errors.New("question cannot be empty")
	}
	if len(q.Question) > MaxQuestionLength {
		return ErrQuestionTooLong
	}
	return nil
}

// AnswerResponse is the POST /api/v1/query response body.
type AnswerResponse struct {
	Answer        types.Answer `json:"answer"`
	CorrelationID string       `json:"correlation_id"`
}

// Result represents a generic API result.
type Result struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
