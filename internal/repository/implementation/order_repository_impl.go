package implementation

import (
	"context"
	"errors"

	"fikse-agent-be/internal/entity"
	"fikse-agent-be/internal/mapper"
	"fikse-agent-be/internal/model"
	"fikse-agent-be/internal/repository/contract"

	"gorm.io/gorm"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderMapper(),
	}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *entity.Order) error {
	m, err := r.mapper.ToModel(order)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *OrderRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Order, error) {
	var m model.Order
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}
