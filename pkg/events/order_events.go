package events

import (
	"time"

	"fikse-agent-be/internal/entity"
)

const TypeOrderConfirmed = "ORDER_CONFIRMED"

// NewOrderConfirmed builds the event published when a draft order is
// finalized by the customer.
func NewOrderConfirmed(order *entity.Order) Event {
	services := make([]map[string]interface{}, len(order.Services))
	for i, s := range order.Services {
		services[i] = map[string]interface{}{
			"service":       s.Service,
			"garment_type":  s.GarmentType,
			"repairer_type": s.RepairerType,
			"price":         s.Price,
		}
	}

	return BaseEvent{
		Type: TypeOrderConfirmed,
		Data: map[string]interface{}{
			"order_id":    order.Id,
			"total_price": order.TotalPrice,
			"services":    services,
			"created_at":  order.CreatedAt.Format(time.RFC3339),
		},
		OccurredAt: time.Now(),
	}
}
