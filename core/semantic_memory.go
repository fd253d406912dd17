package core

import "context"

// MemoryRecordMetadata describes a single remembered item.
type MemoryRecordMetadata struct {
	// IsReference marks records that point at an external source instead of
	// holding the text itself.
	IsReference        bool
	ExternalSourceName string
	ID                 string
	Description        string
	Text               string
	AdditionalMetadata string
}

// MemoryQueryResult is a recalled record plus its relevance in [0, 1].
type MemoryQueryResult struct {
	Metadata  MemoryRecordMetadata
	Relevance float64
}

// SemanticTextMemory is the memory service borrowed by an ExecutionContext.
// The context never calls it; it only holds and forwards the reference so
// functions further down the pipeline can recall or store information.
// Implementations must be safe for concurrent use since many contexts share
// one instance.
type SemanticTextMemory interface {
	SaveInformation(ctx context.Context, collection, text, id, description, additionalMetadata string) (string, error)
	SaveReference(ctx context.Context, collection, text, externalID, externalSourceName, description, additionalMetadata string) (string, error)
	// Get fails when the collection / key pair is unknown.
	Get(ctx context.Context, collection, key string) (*MemoryQueryResult, error)
	Remove(ctx context.Context, collection, key string) error
	Search(ctx context.Context, collection, query string, limit int, minRelevance float64) ([]MemoryQueryResult, error)
	Collections(ctx context.Context) ([]string, error)
}
