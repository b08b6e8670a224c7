package mapper

import (
	"fmt"
	"math"

	"fikse-agent-be/internal/dto"
	"fikse-agent-be/internal/entity"
	"fikse-agent-be/pkg/rank"
)

type SearchMapper struct{}

func NewSearchMapper() *SearchMapper {
	return &SearchMapper{}
}

// ToSearchResult converts a ranked candidate to its API shape. The similarity
// score is rounded to two decimals, which is what the UI displays.
func (m *SearchMapper) ToSearchResult(c rank.Candidate) dto.SearchResult {
	return dto.SearchResult{
		RepairerType:    c.Record.RepairerType,
		Category:        c.Record.Category,
		GarmentType:     c.Record.GarmentType,
		Service:         c.Record.Service,
		Description:     c.Record.Description,
		Price:           c.Record.Price,
		EstimatedHours:  c.Record.EstimatedHours,
		SimilarityScore: math.Round(c.Score*100) / 100,
	}
}

func (m *SearchMapper) ToSearchResults(candidates []rank.Candidate) []dto.SearchResult {
	results := make([]dto.SearchResult, len(candidates))
	for i, c := range candidates {
		results[i] = m.ToSearchResult(c)
	}
	return results
}

func (m *SearchMapper) ToOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	services := make([]dto.ServiceItem, len(o.Services))
	for i, s := range o.Services {
		services[i] = dto.ServiceItem{
			Id:             fmt.Sprintf("service_%d", i+1),
			Service:        s.Service,
			Description:    s.Description,
			Price:          s.Price,
			Category:       s.Category,
			GarmentType:    s.GarmentType,
			RepairerType:   s.RepairerType,
			EstimatedHours: s.EstimatedHours,
		}
	}
	return &dto.OrderResponse{
		OrderId:        o.Id,
		Services:       services,
		TotalPrice:     o.TotalPrice,
		EstimatedHours: o.EstimatedHours,
		CreatedAt:      o.CreatedAt,
		Status:         o.Status,
	}
}
