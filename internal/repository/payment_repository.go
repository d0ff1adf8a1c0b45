package repository

import (
	"shopflow/internal/domain"
	"shopflow/pkg/logger"
)

type PaymentRepository struct {
	store  *Store[domain.PaymentTransaction, *domain.PaymentTransaction]
	logger logger.Logger
}

func NewPaymentRepository(logger logger.Logger) domain.PaymentRepository {
	return &PaymentRepository{
		store:  NewStore[domain.PaymentTransaction, *domain.PaymentTransaction](),
		logger: logger,
	}
}

func (r *PaymentRepository) Create(tx *domain.PaymentTransaction) *domain.PaymentTransaction {
	return r.store.Add(tx)
}

func (r *PaymentRepository) ByUserID(userID string) []*domain.PaymentTransaction {
	return r.store.FindBy("user_id", userID)
}

func (r *PaymentRepository) ByOrderID(orderID string) []*domain.PaymentTransaction {
	return r.store.FindBy("order_id", orderID)
}
