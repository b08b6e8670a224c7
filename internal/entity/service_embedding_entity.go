package entity

import (
	"time"

	"fikse-agent-be/pkg/catalog"

	"github.com/google/uuid"
)

// ServiceEmbedding is one indexed catalog row: the record, the concatenated
// document text that was embedded, and the vector itself.
type ServiceEmbedding struct {
	Id             uuid.UUID
	Record         catalog.Record
	Document       string
	EmbeddingValue []float32
	CreatedAt      time.Time
}
