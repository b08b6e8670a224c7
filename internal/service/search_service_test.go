package service

import (
	"context"
	"errors"
	"testing"

	"fikse-agent-be/internal/config"
	"fikse-agent-be/internal/dto"
	"fikse-agent-be/internal/entity"
	"fikse-agent-be/internal/pkg/serverutils"
	"fikse-agent-be/internal/repository/contract"
	"fikse-agent-be/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchTestConfig() config.SearchConfig {
	return config.SearchConfig{
		CandidateK:     100,
		MaxResults:     10,
		SuggestionCap:  5,
		PriceTolerance: 50,
	}
}

func scoredService(service, description string, price, similarity float64) *contract.ScoredService {
	return &contract.ScoredService{
		Embedding: &entity.ServiceEmbedding{
			Record: catalog.Record{
				RepairerType: "Tailor",
				Category:     "Clothing",
				GarmentType:  "Jacket",
				Service:      service,
				Description:  description,
				Price:        price,
			},
		},
		Similarity: similarity,
	}
}

func TestSearchRejectsBlankQuery(t *testing.T) {
	svc := NewSearchService(&fakeProvider{}, &fakeEmbeddingRepo{}, searchTestConfig(), noopLogger{})

	_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "   "})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, serverutils.KindInvalidQuery, appErr.Kind)
}

func TestSearchEmbeddingFailureIsIndexUnavailable(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	svc := NewSearchService(provider, &fakeEmbeddingRepo{}, searchTestConfig(), noopLogger{})

	_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "zipper"})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, serverutils.KindIndexUnavailable, appErr.Kind)
}

func TestSearchVectorFailureIsIndexUnavailable(t *testing.T) {
	provider := &fakeProvider{vector: []float32{1, 0}}
	repo := &fakeEmbeddingRepo{err: errors.New("relation does not exist")}
	svc := NewSearchService(provider, repo, searchTestConfig(), noopLogger{})

	_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "zipper"})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, serverutils.KindIndexUnavailable, appErr.Kind)
}

func TestSearchEmptyResultIsSuccess(t *testing.T) {
	provider := &fakeProvider{vector: []float32{1, 0}}
	svc := NewSearchService(provider, &fakeEmbeddingRepo{}, searchTestConfig(), noopLogger{})

	results, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "waterproofing"})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchKeywordTierBeatsSimilarity(t *testing.T) {
	provider := &fakeProvider{vector: []float32{1, 0}}
	repo := &fakeEmbeddingRepo{scored: []*contract.ScoredService{
		scoredService("Sole repair", "Fix worn soles", 349, 0.99),
		scoredService("Zipper replacement", "Replace a broken zipper", 199, 0.42),
	}}
	svc := NewSearchService(provider, repo, searchTestConfig(), noopLogger{})

	results, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "zipper"})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Zipper replacement", results[0].Service)
	assert.Equal(t, "Sole repair", results[1].Service)
}

func TestSearchFetchesFullCandidatePool(t *testing.T) {
	provider := &fakeProvider{vector: []float32{1, 0}}
	repo := &fakeEmbeddingRepo{}
	svc := NewSearchService(provider, repo, searchTestConfig(), noopLogger{})

	_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "zipper"})

	require.NoError(t, err)
	assert.Equal(t, 100, repo.limit)
}

func TestSearchRoundsSimilarityScore(t *testing.T) {
	provider := &fakeProvider{vector: []float32{1, 0}}
	repo := &fakeEmbeddingRepo{scored: []*contract.ScoredService{
		scoredService("Zipper replacement", "", 199, 0.87654),
	}}
	svc := NewSearchService(provider, repo, searchTestConfig(), noopLogger{})

	results, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "zipper"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0.88, results[0].SimilarityScore)
}

func TestSearchExplicitPriceFilter(t *testing.T) {
	provider := &fakeProvider{vector: []float32{1, 0}}
	repo := &fakeEmbeddingRepo{scored: []*contract.ScoredService{
		scoredService("Cheap fix", "", 50, 0.9),
		scoredService("Mid fix", "", 200, 0.8),
		scoredService("Pricey fix", "", 500, 0.7),
	}}
	svc := NewSearchService(provider, repo, searchTestConfig(), noopLogger{})

	target := 200.0
	tolerance := 20.0
	results, err := svc.Search(context.Background(), &dto.SearchRequest{
		Query:          "fix",
		PriceTarget:    &target,
		PriceTolerance: &tolerance,
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Mid fix", results[0].Service)
}

func TestSearchPriceTargetFromQueryText(t *testing.T) {
	provider := &fakeProvider{vector: []float32{1, 0}}
	repo := &fakeEmbeddingRepo{scored: []*contract.ScoredService{
		scoredService("In window", "", 199, 0.9),
		scoredService("Out of window", "", 400, 0.8),
	}}
	svc := NewSearchService(provider, repo, searchTestConfig(), noopLogger{})

	results, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "zipper around 199"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "In window", results[0].Service)
}

func TestSearchCandidatesRespectsLimit(t *testing.T) {
	provider := &fakeProvider{vector: []float32{1, 0}}
	var scored []*contract.ScoredService
	for i := 0; i < 20; i++ {
		scored = append(scored, scoredService("Generic fix", "", 100, float64(20-i)/20))
	}
	repo := &fakeEmbeddingRepo{scored: scored}
	svc := NewSearchService(provider, repo, searchTestConfig(), noopLogger{})

	candidates, err := svc.SearchCandidates(context.Background(), "something torn", 5)

	require.NoError(t, err)
	assert.Len(t, candidates, 5)
}
