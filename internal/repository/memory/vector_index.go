package memory

import (
	"context"
	"sort"
	"sync"

	"fikse-agent-be/internal/entity"
	"fikse-agent-be/internal/repository/contract"

	"github.com/google/uuid"
)

// VectorIndex is a flat in-memory cosine index over the catalog embeddings.
// Vectors are assumed normalized, so the inner product is the cosine
// similarity. Writes happen only while the catalog is being indexed; reads
// are concurrent afterwards.
type VectorIndex struct {
	mu      sync.RWMutex
	entries []*entity.ServiceEmbedding
}

func NewVectorIndex() *VectorIndex {
	return &VectorIndex{}
}

func (x *VectorIndex) CreateBulk(ctx context.Context, embeddings []*entity.ServiceEmbedding) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	for _, e := range embeddings {
		if e.Id == uuid.Nil {
			e.Id = uuid.New()
		}
		x.entries = append(x.entries, e)
	}
	return nil
}

func (x *VectorIndex) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredService, error) {
	if limit <= 0 {
		limit = 10
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	scored := make([]*contract.ScoredService, 0, len(x.entries))
	for _, e := range x.entries {
		scored = append(scored, &contract.ScoredService{
			Embedding:  e,
			Similarity: dot(embedding, e.EmbeddingValue),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

func (x *VectorIndex) Count(ctx context.Context) (int64, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return int64(len(x.entries)), nil
}

func dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
