package mapper

import (
	"encoding/json"

	"fikse-agent-be/internal/entity"
	"fikse-agent-be/internal/model"
	"fikse-agent-be/pkg/catalog"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToModel(e *entity.Order) (*model.Order, error) {
	services, err := json.Marshal(e.Services)
	if err != nil {
		return nil, err
	}
	return &model.Order{
		Id:             e.Id,
		Services:       services,
		TotalPrice:     e.TotalPrice,
		EstimatedHours: e.EstimatedHours,
		Status:         e.Status,
		CreatedAt:      e.CreatedAt,
	}, nil
}

func (m *OrderMapper) ToEntity(mo *model.Order) (*entity.Order, error) {
	var services []catalog.Record
	if len(mo.Services) > 0 {
		if err := json.Unmarshal(mo.Services, &services); err != nil {
			return nil, err
		}
	}
	return &entity.Order{
		Id:             mo.Id,
		Services:       services,
		TotalPrice:     mo.TotalPrice,
		EstimatedHours: mo.EstimatedHours,
		Status:         mo.Status,
		CreatedAt:      mo.CreatedAt,
	}, nil
}
