package contract

import (
	"context"

	"fikse-agent-be/internal/entity"
)

// ScoredService is a vector search hit: the indexed row plus its cosine
// similarity to the query (higher = closer).
type ScoredService struct {
	Embedding  *entity.ServiceEmbedding
	Similarity float64
}

// ServiceEmbeddingRepository is the vector index contract. Backed by pgvector
// in production and an in-memory cosine index for tests and DB-less runs.
type ServiceEmbeddingRepository interface {
	CreateBulk(ctx context.Context, embeddings []*entity.ServiceEmbedding) error
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredService, error)
	Count(ctx context.Context) (int64, error)
}
