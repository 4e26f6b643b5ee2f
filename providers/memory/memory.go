// Package memory declares the contract of the long-term memory store the
// loop consults when a run is configured with include_memory. The store
// itself — episodic or semantic, local or remote — is owned by the host; the
// inmemory subpackage provides a simple implementation for tests and demos.
package memory

import "context"

// Provider is the recall collaborator the loop consumes. Implementations
// must be safe for concurrent use; multiple loops may share one store.
type Provider interface {
	// Remember stores one entry.
	Remember(ctx context.Context, entry string) error

	// Recall returns up to limit entries relevant to query, most relevant
	// first. An empty result is not an error.
	Recall(ctx context.Context, query string, limit int) ([]string, error)
}
