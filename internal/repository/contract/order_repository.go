package contract

import (
	"context"

	"fikse-agent-be/internal/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindById(ctx context.Context, id string) (*entity.Order, error)
}
