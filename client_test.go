package kgquery_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kgquery "github.com/narrativegraph/kgquery"
	"github.com/narrativegraph/kgquery/pkg/graphstore"
	"github.com/narrativegraph/kgquery/pkg/types"
)

func buildTestStore(t *testing.T) *graphstore.Store {
	t.Helper()
	dir := t.TempDir()

	entities := `[
		{"id": "person_karna", "canonical_name": "karna", "kind": "PERSON", "event_count": 2, "aliases": ["karna"]},
		{"id": "person_arjuna", "canonical_name": "arjuna", "kind": "PERSON", "event_count": 1, "aliases": ["arjuna"]}
	]`
	events := `[
		{"id": "E500", "type": "KILL", "tier": "MACRO", "sentence": "Arjuna killed Karna.", "participants": ["person_arjuna", "person_karna"]},
		{"id": "E600", "type": "DEATH", "tier": "MACRO", "sentence": "Karna died.", "participants": ["person_karna"]}
	]`
	edges := `[
		{"source": "person_arjuna", "relation": "PARTICIPATED_IN", "target": "E500", "evidence": "Arjuna killed Karna."},
		{"source": "person_karna", "relation": "PARTICIPATED_IN", "target": "E500", "evidence": "Arjuna killed Karna."},
		{"source": "person_karna", "relation": "PARTICIPATED_IN", "target": "E600", "evidence": "Karna died."}
	]`

	entPath := filepath.Join(dir, "entities.json")
	evPath := filepath.Join(dir, "events.json")
	edPath := filepath.Join(dir, "edges.json")

	require.NoError(t, os.WriteFile(entPath, []byte(entities), 0o644))
	require.NoError(t, os.WriteFile(evPath, []byte(events), 0o644))
	require.NoError(t, os.WriteFile(edPath, []byte(edges), 0o644))

	store, err := graphstore.Load(graphstore.Paths{
		Entities: entPath, Events: evPath, Edges: edPath, Format: graphstore.FormatJSON,
	})
	require.NoError(t, err)
	return store
}

func TestNewClientRejectsNilStore(t *testing.T) {
	_, err := kgquery.NewClient(nil, nil)
	assert.ErrorIs(t, err, kgquery.ErrNoStore)
}

func TestClientAskWhoKilledKarna(t *testing.T) {
	store := buildTestStore(t)
	client, err := kgquery.NewClient(store, nil)
	require.NoError(t, err)

	res, err := client.Ask(context.Background(), "Who killed Karna?")
	require.NoError(t, err)
	require.NotEmpty(t, res.CorrelationID)
	require.Equal(t, types.IntentFact, res.Plan.Intent)
	require.Equal(t, types.AnswerEntity, res.Answer.Type)
	require.Len(t, res.Answer.Payload.Entities, 1)
	assert.Equal(t, "person_arjuna", res.Answer.Payload.Entities[0].ID)
}

func TestClientAskRejectsCanceledContext(t *testing.T) {
	store := buildTestStore(t)
	client, err := kgquery.NewClient(store, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Ask(ctx, "Who killed Karna?")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientAsksAreIndependentlyCorrelated(t *testing.T) {
	store := buildTestStore(t)
	client, err := kgquery.NewClient(store, nil)
	require.NoError(t, err)

	first, err := client.Ask(context.Background(), "Who killed Karna?")
	require.NoError(t, err)
	second, err := client.Ask(context.Background(), "Who killed Karna?")
	require.NoError(t, err)

	assert.NotEqual(t, first.CorrelationID, second.CorrelationID)
}
