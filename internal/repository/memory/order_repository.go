package memory

import (
	"context"
	"sync"

	"fikse-agent-be/internal/entity"
	"fikse-agent-be/internal/repository/contract"
)

// OrderRepository keeps confirmed orders in memory for deployments that run
// without Postgres.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order
}

func NewOrderRepository() contract.OrderRepository {
	return &OrderRepository{
		orders: make(map[string]*entity.Order),
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *order
	r.orders[order.Id] = &copied
	return nil
}

func (r *OrderRepository) FindById(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if o, ok := r.orders[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, nil
}
