package service

import (
	"context"
	"strings"

	"fikse-agent-be/internal/config"
	"fikse-agent-be/internal/dto"
	"fikse-agent-be/internal/mapper"
	"fikse-agent-be/internal/pkg/logger"
	"fikse-agent-be/internal/pkg/serverutils"
	"fikse-agent-be/internal/repository/contract"
	"fikse-agent-be/pkg/embedding"
	"fikse-agent-be/pkg/rank"
)

// ISearchService is the hybrid search facade: semantic retrieval re-ordered
// by keyword tiers, with optional price filtering.
type ISearchService interface {
	Search(ctx context.Context, req *dto.SearchRequest) ([]dto.SearchResult, error)
	SearchCandidates(ctx context.Context, query string, limit int) ([]rank.Candidate, error)
}

type searchService struct {
	embeddingProvider embedding.EmbeddingProvider
	embeddingRepo     contract.ServiceEmbeddingRepository
	cfg               config.SearchConfig
	mapper            *mapper.SearchMapper
	log               logger.ILogger
}

func NewSearchService(
	embeddingProvider embedding.EmbeddingProvider,
	embeddingRepo contract.ServiceEmbeddingRepository,
	cfg config.SearchConfig,
	log logger.ILogger,
) ISearchService {
	return &searchService{
		embeddingProvider: embeddingProvider,
		embeddingRepo:     embeddingRepo,
		cfg:               cfg,
		mapper:            mapper.NewSearchMapper(),
		log:               log,
	}
}

// Search handles the public search contract. An explicit price filter wins;
// otherwise a bare number in the query is treated as a price target with the
// configured tolerance.
func (s *searchService) Search(ctx context.Context, req *dto.SearchRequest) ([]dto.SearchResult, error) {
	var filter *rank.PriceFilter
	if req.PriceTarget != nil {
		tolerance := s.cfg.PriceTolerance
		if req.PriceTolerance != nil {
			tolerance = *req.PriceTolerance
		}
		filter = &rank.PriceFilter{Target: *req.PriceTarget, Tolerance: tolerance}
	} else if target, ok := rank.ExtractPriceTarget(req.Query); ok {
		filter = &rank.PriceFilter{Target: target, Tolerance: s.cfg.PriceTolerance}
	}

	candidates, err := s.rankedSearch(ctx, req.Query, filter, s.cfg.MaxResults)
	if err != nil {
		return nil, err
	}

	// Empty result is a valid outcome, serialized as an empty list.
	return s.mapper.ToSearchResults(candidates), nil
}

// SearchCandidates is the agent-facing variant returning raw ranked
// candidates, capped at limit.
func (s *searchService) SearchCandidates(ctx context.Context, query string, limit int) ([]rank.Candidate, error) {
	var filter *rank.PriceFilter
	if target, ok := rank.ExtractPriceTarget(query); ok {
		filter = &rank.PriceFilter{Target: target, Tolerance: s.cfg.PriceTolerance}
	}
	return s.rankedSearch(ctx, query, filter, limit)
}

func (s *searchService) rankedSearch(ctx context.Context, query string, filter *rank.PriceFilter, limit int) ([]rank.Candidate, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, serverutils.NewInvalidQueryError("search query must not be empty")
	}

	embeddingRes, err := s.embeddingProvider.Generate(q, embedding.TaskRetrievalQuery)
	if err != nil {
		s.log.Error("search", "Embedding generation failed", map[string]interface{}{"error": err.Error()})
		return nil, serverutils.NewIndexUnavailableError(err)
	}

	scored, err := s.embeddingRepo.SearchSimilarWithScore(ctx, embeddingRes.Embedding.Values, s.cfg.CandidateK)
	if err != nil {
		s.log.Error("search", "Vector search failed", map[string]interface{}{"error": err.Error()})
		return nil, serverutils.NewIndexUnavailableError(err)
	}

	candidates := make([]rank.Candidate, len(scored))
	for i, sc := range scored {
		candidates[i] = rank.Candidate{
			Record: sc.Embedding.Record,
			Score:  sc.Similarity,
			Tier:   rank.AssignTier(q, &sc.Embedding.Record),
		}
	}

	ranked := rank.Rank(candidates, filter, limit)

	s.log.Debug("search", "Hybrid search executed", map[string]interface{}{
		"query":      q,
		"candidates": len(candidates),
		"returned":   len(ranked),
		"filtered":   filter != nil,
	})

	return ranked, nil
}
