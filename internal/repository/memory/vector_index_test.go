package memory

import (
	"context"
	"testing"

	"fikse-agent-be/internal/entity"
	"fikse-agent-be/pkg/catalog"
)

func entry(service string, vec []float32) *entity.ServiceEmbedding {
	return &entity.ServiceEmbedding{
		Record:         catalog.Record{Service: service, Price: 100},
		Document:       service,
		EmbeddingValue: vec,
	}
}

func TestVectorIndexSearchOrdersBySimilarity(t *testing.T) {
	ctx := context.Background()
	idx := NewVectorIndex()

	err := idx.CreateBulk(ctx, []*entity.ServiceEmbedding{
		entry("orthogonal", []float32{0, 1, 0}),
		entry("identical", []float32{1, 0, 0}),
		entry("close", []float32{0.8, 0.6, 0}),
	})
	if err != nil {
		t.Fatalf("CreateBulk error = %v", err)
	}

	scored, err := idx.SearchSimilarWithScore(ctx, []float32{1, 0, 0}, 10)
	if err != nil {
		t.Fatalf("SearchSimilarWithScore error = %v", err)
	}

	wantOrder := []string{"identical", "close", "orthogonal"}
	for i, want := range wantOrder {
		if scored[i].Embedding.Record.Service != want {
			t.Errorf("position %d = %q, want %q", i, scored[i].Embedding.Record.Service, want)
		}
	}
	if scored[0].Similarity != 1.0 {
		t.Errorf("top similarity = %v, want 1.0", scored[0].Similarity)
	}
}

func TestVectorIndexLimit(t *testing.T) {
	ctx := context.Background()
	idx := NewVectorIndex()

	var entries []*entity.ServiceEmbedding
	for i := 0; i < 20; i++ {
		entries = append(entries, entry("svc", []float32{1, 0}))
	}
	if err := idx.CreateBulk(ctx, entries); err != nil {
		t.Fatalf("CreateBulk error = %v", err)
	}

	scored, err := idx.SearchSimilarWithScore(ctx, []float32{1, 0}, 5)
	if err != nil {
		t.Fatalf("SearchSimilarWithScore error = %v", err)
	}
	if len(scored) != 5 {
		t.Errorf("len = %d, want 5", len(scored))
	}
}

func TestVectorIndexAssignsIds(t *testing.T) {
	ctx := context.Background()
	idx := NewVectorIndex()

	e := entry("svc", []float32{1, 0})
	if err := idx.CreateBulk(ctx, []*entity.ServiceEmbedding{e}); err != nil {
		t.Fatalf("CreateBulk error = %v", err)
	}
	if e.Id.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("Id not assigned")
	}

	count, err := idx.Count(ctx)
	if err != nil {
		t.Fatalf("Count error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1", count)
	}
}
