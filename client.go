package kgquery

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/narrativegraph/kgquery/pkg/executor"
	"github.com/narrativegraph/kgquery/pkg/graphstore"
	"github.com/narrativegraph/kgquery/pkg/logger"
	"github.com/narrativegraph/kgquery/pkg/planner"
	"github.com/narrativegraph/kgquery/pkg/resolver"
	"github.com/narrativegraph/kgquery/pkg/types"
)

// ErrNoStore is returned by NewClient when given a nil Graph Store.
var ErrNoStore = errors.New("kgquery: graph store is nil")

// Client is the main entry point for asking questions against a
// loaded Graph Store. It is safe for concurrent use: the store is
// read-only and each Ask call builds its own query-scoped state.
type Client struct {
	store  *graphstore.Store
	logger *slog.Logger
}

// NewClient builds a Client around an already-loaded Graph Store. The
// store must come from a successful graphstore.Load call; NewClient
// does no I/O of its own. A nil logger falls back to a default
// colored logger at info level.
func NewClient(store *graphstore.Store, log *slog.Logger) (*Client, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	if log == nil {
		log = logger.NewDefaultLogger(slog.LevelInfo)
	}
	return &Client{store: store, logger: log}, nil
}

// AskResult bundles the Answer with the full decision trace and the
// correlation id the query was tagged with, for callers that want to
// log or display the reasoning alongside the answer.
type AskResult struct {
	Answer        types.Answer
	CorrelationID string
	Plan          *types.QueryPlan
	Result        *types.QueryResult
}

// Ask routes questionText through the planner, executor, and resolver
// in sequence and returns the resulting Answer. It never fails on a
// well-formed question: "no answer" is the NO_ANSWER Answer variant,
// not an error. The only way Ask can return an error is if ctx is
// already canceled, since none of the three pipeline stages perform
// I/O or support cancellation mid-query (see the concurrency model).
func (c *Client) Ask(ctx context.Context, questionText string) (*AskResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	correlationID := uuid.NewString()
	log := c.logger.With("correlation_id", correlationID)

	log.Info("planning query", "question", questionText)
	plan := planner.Plan(questionText, c.store.RegistrySnapshot())
	log.Debug("query planned", "intent", plan.Intent, "seeds", plan.SeedEntityIDs, "depth", plan.TraversalDepth)

	result := executor.Execute(plan, c.store, questionText)
	for _, line := range result.Trace {
		log.Debug(line)
	}
	log.Info("query executed", "found", result.Found, "matched_events", len(result.MatchedEvents))

	answer := resolver.Resolve(plan, result)
	for _, line := range answer.Trace {
		log.Debug(line)
	}
	log.Info("query resolved", "answer_type", answer.Type, "confidence", answer.Confidence)

	return &AskResult{
		Answer:        answer,
		CorrelationID: correlationID,
		Plan:          plan,
		Result:        result,
	}, nil
}

// Store returns the underlying Graph Store, for callers that need
// direct read access (health checks, diagnostics).
func (c *Client) Store() *graphstore.Store {
	return c.store
}
