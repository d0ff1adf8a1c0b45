package repository

import (
	"shopflow/internal/domain"
	"shopflow/pkg/logger"
)

type OrderRepository struct {
	store  *Store[domain.Order, *domain.Order]
	logger logger.Logger
}

func NewOrderRepository(logger logger.Logger) domain.OrderRepository {
	return &OrderRepository{
		store:  NewStore[domain.Order, *domain.Order](),
		logger: logger,
	}
}

func (r *OrderRepository) Create(order *domain.Order) *domain.Order {
	return r.store.Add(order)
}

func (r *OrderRepository) FindByID(id string) (*domain.Order, bool) {
	return r.store.Get(id)
}

func (r *OrderRepository) ByUserID(userID string) []*domain.Order {
	return r.store.FindBy("user_id", userID)
}

func (r *OrderRepository) Mutate(id string, fn func(order *domain.Order) error) (*domain.Order, error) {
	return r.store.Mutate(id, fn)
}
