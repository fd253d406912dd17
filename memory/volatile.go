package memory

import (
	"context"
	"fmt"
	"maps"
	"math"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hupe1980/skcontext/core"
	"github.com/hupe1980/skcontext/logging"
)

// Embedder turns texts into embedding vectors, one per input, in order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// VolatileOptions configures a VolatileMemory.
type VolatileOptions struct {
	// Embedder enables similarity search. Without one, Search falls back to
	// case-insensitive substring matching with a constant relevance of 1.0.
	Embedder Embedder

	// Logger defaults to NoOpLogger when nil.
	Logger logging.Logger
}

type volatileRecord struct {
	metadata  core.MemoryRecordMetadata
	embedding []float64
}

// VolatileMemory is a process-local core.SemanticTextMemory. Records are
// grouped in collections and kept in insertion order. It is safe for
// concurrent use, so a single instance can back every context of a kernel.
type VolatileMemory struct {
	mu          sync.RWMutex
	collections map[string]map[string]*volatileRecord // collection -> id -> record
	order       map[string][]string                   // collection -> ids in insertion order
	embedder    Embedder
	logger      logging.Logger
}

// NewVolatileMemory creates an empty store.
func NewVolatileMemory(optFns ...func(o *VolatileOptions)) *VolatileMemory {
	opts := VolatileOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &VolatileMemory{
		collections: make(map[string]map[string]*volatileRecord),
		order:       make(map[string][]string),
		embedder:    opts.Embedder,
		logger:      opts.Logger,
	}
}

// SaveInformation stores text under id (a random id when empty) and returns
// the id used. Saving an existing id replaces the record.
func (m *VolatileMemory) SaveInformation(ctx context.Context, collection, text, id, description, additionalMetadata string) (string, error) {
	return m.save(ctx, collection, core.MemoryRecordMetadata{
		ID:                 id,
		Text:               text,
		Description:        description,
		AdditionalMetadata: additionalMetadata,
	})
}

// SaveReference stores a pointer to an external source. The text is kept for
// matching and embedding.
func (m *VolatileMemory) SaveReference(ctx context.Context, collection, text, externalID, externalSourceName, description, additionalMetadata string) (string, error) {
	return m.save(ctx, collection, core.MemoryRecordMetadata{
		IsReference:        true,
		ExternalSourceName: externalSourceName,
		ID:                 externalID,
		Text:               text,
		Description:        description,
		AdditionalMetadata: additionalMetadata,
	})
}

func (m *VolatileMemory) save(ctx context.Context, collection string, md core.MemoryRecordMetadata) (string, error) {
	if collection == "" {
		return "", fmt.Errorf("collection name must not be empty")
	}

	if md.ID == "" {
		md.ID = uuid.NewString()
	}

	rec := &volatileRecord{metadata: md}

	if m.embedder != nil {
		vecs, err := m.embedder.Embed(ctx, []string{md.Text})
		if err != nil {
			return "", fmt.Errorf("embed record %s: %w", md.ID, err)
		}
		if len(vecs) != 1 {
			return "", fmt.Errorf("embed record %s: expected 1 vector, got %d", md.ID, len(vecs))
		}
		rec.embedding = vecs[0]
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	records, ok := m.collections[collection]
	if !ok {
		records = make(map[string]*volatileRecord)
		m.collections[collection] = records
	}

	if _, exists := records[md.ID]; !exists {
		m.order[collection] = append(m.order[collection], md.ID)
	}
	records[md.ID] = rec

	m.logger.Debug("memory.save", "collection", collection, "id", md.ID, "reference", md.IsReference)

	return md.ID, nil
}

// Get returns the record stored under key, or an error wrapping ErrNotFound.
func (m *VolatileMemory) Get(_ context.Context, collection, key string) (*core.MemoryQueryResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.collections[collection][key]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, key)
	}

	return &core.MemoryQueryResult{Metadata: rec.metadata, Relevance: 1.0}, nil
}

// Remove deletes a record. Removing an unknown key is a no-op.
func (m *VolatileMemory) Remove(_ context.Context, collection, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, ok := m.collections[collection]
	if !ok {
		return nil
	}

	if _, exists := records[key]; !exists {
		return nil
	}

	delete(records, key)
	m.order[collection] = slices.DeleteFunc(m.order[collection], func(id string) bool { return id == key })

	return nil
}

// Search returns up to limit records of collection whose relevance to query
// is at least minRelevance, most relevant first. A limit <= 0 means no limit.
func (m *VolatileMemory) Search(ctx context.Context, collection, query string, limit int, minRelevance float64) ([]core.MemoryQueryResult, error) {
	var queryVec []float64

	if m.embedder != nil && query != "" {
		vecs, err := m.embedder.Embed(ctx, []string{query})
		if err != nil {
			return nil, fmt.Errorf("embed query: %w", err)
		}
		if len(vecs) != 1 {
			return nil, fmt.Errorf("embed query: expected 1 vector, got %d", len(vecs))
		}
		queryVec = vecs[0]
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	records := m.collections[collection]
	results := make([]core.MemoryQueryResult, 0)

	for _, id := range m.order[collection] {
		rec := records[id]

		var relevance float64
		switch {
		case query == "":
			relevance = 1.0
		case queryVec != nil:
			relevance = cosineSimilarity(queryVec, rec.embedding)
		case strings.Contains(strings.ToLower(rec.metadata.Text), strings.ToLower(query)):
			relevance = 1.0
		default:
			continue
		}

		if relevance < minRelevance {
			continue
		}

		results = append(results, core.MemoryQueryResult{Metadata: rec.metadata, Relevance: relevance})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Relevance > results[j].Relevance })

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// Collections lists collection names in sorted order.
func (m *VolatileMemory) Collections(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.collections)), nil
}

// cosineSimilarity returns 0 for mismatched or zero-length vectors.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}

	if na == 0 || nb == 0 {
		return 0
	}

	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

var _ core.SemanticTextMemory = (*VolatileMemory)(nil)
