package service

import (
	"context"
	"errors"

	"fikse-agent-be/internal/dto"
	"fikse-agent-be/internal/entity"
	"fikse-agent-be/internal/repository/contract"
	"fikse-agent-be/pkg/embedding"
	"fikse-agent-be/pkg/rank"
	"fikse-agent-be/pkg/store"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type fakeProvider struct {
	vector []float32
	err    error
	calls  []string
}

func (p *fakeProvider) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	p.calls = append(p.calls, text)
	if p.err != nil {
		return nil, p.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: p.vector},
	}, nil
}

type fakeEmbeddingRepo struct {
	scored []*contract.ScoredService
	err    error
	limit  int
}

func (r *fakeEmbeddingRepo) CreateBulk(ctx context.Context, embeddings []*entity.ServiceEmbedding) error {
	return nil
}

func (r *fakeEmbeddingRepo) SearchSimilarWithScore(ctx context.Context, vec []float32, limit int) ([]*contract.ScoredService, error) {
	r.limit = limit
	if r.err != nil {
		return nil, r.err
	}
	return r.scored, nil
}

func (r *fakeEmbeddingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.scored)), nil
}

// fakeSearchService feeds canned candidates to the agent.
type fakeSearchService struct {
	candidates []rank.Candidate
	err        error
	queries    []string
}

func (s *fakeSearchService) Search(ctx context.Context, req *dto.SearchRequest) ([]dto.SearchResult, error) {
	return nil, errors.New("not used")
}

func (s *fakeSearchService) SearchCandidates(ctx context.Context, query string, limit int) ([]rank.Candidate, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	if limit > 0 && len(s.candidates) > limit {
		return s.candidates[:limit], nil
	}
	return s.candidates, nil
}

type fakeSessionRepo struct {
	sessions map[string]*store.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*store.Session)}
}

func (r *fakeSessionRepo) Save(session *store.Session) {
	r.sessions[session.ID] = session
}

func (r *fakeSessionRepo) Get(sessionID string) (*store.Session, bool) {
	s, ok := r.sessions[sessionID]
	return s, ok
}

func (r *fakeSessionRepo) Delete(sessionID string) {
	delete(r.sessions, sessionID)
}

type fakeOrderRepo struct {
	created []*entity.Order
	err     error
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, order)
	return nil
}

func (r *fakeOrderRepo) FindById(ctx context.Context, id string) (*entity.Order, error) {
	for _, o := range r.created {
		if o.Id == id {
			return o, nil
		}
	}
	return nil, nil
}
