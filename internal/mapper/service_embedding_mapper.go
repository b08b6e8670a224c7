package mapper

import (
	"fikse-agent-be/internal/entity"
	"fikse-agent-be/internal/model"
	"fikse-agent-be/pkg/catalog"

	"github.com/pgvector/pgvector-go"
)

type ServiceEmbeddingMapper struct{}

func NewServiceEmbeddingMapper() *ServiceEmbeddingMapper {
	return &ServiceEmbeddingMapper{}
}

func (m *ServiceEmbeddingMapper) ToModel(e *entity.ServiceEmbedding) *model.ServiceEmbedding {
	return &model.ServiceEmbedding{
		Id:             e.Id,
		RepairerType:   e.Record.RepairerType,
		Category:       e.Record.Category,
		GarmentType:    e.Record.GarmentType,
		Service:        e.Record.Service,
		Description:    e.Record.Description,
		Price:          e.Record.Price,
		EstimatedHours: e.Record.EstimatedHours,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *ServiceEmbeddingMapper) ToEntity(mo *model.ServiceEmbedding) *entity.ServiceEmbedding {
	return &entity.ServiceEmbedding{
		Id: mo.Id,
		Record: catalog.Record{
			RepairerType:   mo.RepairerType,
			Category:       mo.Category,
			GarmentType:    mo.GarmentType,
			Service:        mo.Service,
			Description:    mo.Description,
			Price:          mo.Price,
			EstimatedHours: mo.EstimatedHours,
		},
		Document:       mo.Document,
		EmbeddingValue: mo.EmbeddingValue.Slice(),
		CreatedAt:      mo.CreatedAt,
	}
}
