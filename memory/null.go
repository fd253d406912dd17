package memory

import (
	"context"
	"fmt"

	"github.com/hupe1980/skcontext/core"
)

// NullMemory is the semantic memory used when none is configured. Saves are
// accepted and dropped, lookups never find anything.
type NullMemory struct{}

// SaveInformation discards the record and echoes its id.
func (NullMemory) SaveInformation(_ context.Context, _, _, id, _, _ string) (string, error) {
	return id, nil
}

// SaveReference discards the record and echoes its external id.
func (NullMemory) SaveReference(_ context.Context, _, _, externalID, _, _, _ string) (string, error) {
	return externalID, nil
}

// Get always fails with ErrNotFound.
func (NullMemory) Get(_ context.Context, collection, key string) (*core.MemoryQueryResult, error) {
	return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, key)
}

// Remove is a no-op.
func (NullMemory) Remove(context.Context, string, string) error { return nil }

// Search returns no results.
func (NullMemory) Search(context.Context, string, string, int, float64) ([]core.MemoryQueryResult, error) {
	return []core.MemoryQueryResult{}, nil
}

// Collections returns no collections.
func (NullMemory) Collections(context.Context) ([]string, error) { return []string{}, nil }

var _ core.SemanticTextMemory = NullMemory{}
