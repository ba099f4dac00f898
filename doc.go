// Package kgquery answers structured natural-language questions
// against a precomputed, event-centric narrative knowledge graph.
//
// # Basic Usage
//
// Load the three persisted artifacts once at startup and keep the
// resulting Client for the life of the process:
//
//	store, err := graphstore.Load(graphstore.Paths{
//		Entities: "data/entities.json",
//		Events:   "data/events.json",
//		Edges:    "data/edges.json",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	client, err := kgquery.NewClient(store, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Asking Questions
//
//	res, err := client.Ask(ctx, "Who killed Karna?")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, a := range res.Answer.Payload.Entities {
//		fmt.Println(a.Name)
//	}
//
// # Pipeline
//
// Ask routes a question through three pure stages in sequence:
// planner.Plan classifies intent and extracts seed entities,
// executor.Execute traverses the Graph Store under the resulting
// plan, and resolver.Resolve reduces the traversal to a structured
// Answer. None of the three stages hold state between calls; the
// Graph Store is the only shared, read-only structure.
//
// # Correlation
//
// Every call to Ask is tagged with a fresh correlation id, returned as
// AskResult.CorrelationID, so a single query can be located across
// logs without additional context being threaded by the caller.
//
// # Error Handling
//
// Ask itself never fails on a well-formed question: "no answer found"
// is represented in-band as an Answer of type NO_ANSWER, not an error.
// Ask only returns an error if ctx is already canceled when the call
// is made; NewClient itself rejects a nil Graph Store up front so a
// Client can never be constructed in a state where Ask would fail.
package kgquery
