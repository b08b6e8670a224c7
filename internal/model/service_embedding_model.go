package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type ServiceEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RepairerType   string          `gorm:"type:text"`
	Category       string          `gorm:"type:text"`
	GarmentType    string          `gorm:"type:text"`
	Service        string          `gorm:"type:text;index"`
	Description    string          `gorm:"type:text"`
	Price          float64         `gorm:"index"`
	EstimatedHours *float64
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // nomic-embed-text and text-embedding-004 both emit 768 dims
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (ServiceEmbedding) TableName() string {
	return "service_embeddings"
}
