package dto

import "time"

type ServiceItem struct {
	Id             string   `json:"id"`
	Service        string   `json:"service"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Category       string   `json:"category"`
	GarmentType    string   `json:"garment_type"`
	RepairerType   string   `json:"repairer_type"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
}

type OrderResponse struct {
	OrderId        string        `json:"order_id"`
	Services       []ServiceItem `json:"services"`
	TotalPrice     float64       `json:"total_price"`
	EstimatedHours *float64      `json:"estimated_total_hours,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	Status         string        `json:"status"`
}
