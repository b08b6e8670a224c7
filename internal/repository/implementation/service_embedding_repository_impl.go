package implementation

import (
	"context"

	"fikse-agent-be/internal/entity"
	"fikse-agent-be/internal/mapper"
	"fikse-agent-be/internal/model"
	"fikse-agent-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ServiceEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ServiceEmbeddingMapper
}

func NewServiceEmbeddingRepository(db *gorm.DB) contract.ServiceEmbeddingRepository {
	return &ServiceEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewServiceEmbeddingMapper(),
	}
}

func (r *ServiceEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.ServiceEmbedding) error {
	models := make([]*model.ServiceEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

// SearchSimilarWithScore returns the limit nearest rows with similarity
// scores. Cosine distance in pgvector is 1 - cosine_similarity, so
// 1 - (embedding_value <=> query) recovers the similarity.
func (r *ServiceEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredService, error) {
	if limit <= 0 {
		limit = 10
	}

	type result struct {
		model.ServiceEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("service_embeddings").
		Select("service_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredService, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredService{
			Embedding:  r.mapper.ToEntity(&res.ServiceEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}

func (r *ServiceEmbeddingRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ServiceEmbedding{}).Count(&count).Error
	return count, err
}
