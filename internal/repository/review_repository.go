package repository

import (
	"shopflow/internal/domain"
	"shopflow/pkg/logger"
)

type ReviewRepository struct {
	store  *Store[domain.Review, *domain.Review]
	logger logger.Logger
}

func NewReviewRepository(logger logger.Logger) domain.ReviewRepository {
	return &ReviewRepository{
		store:  NewStore[domain.Review, *domain.Review](),
		logger: logger,
	}
}

func (r *ReviewRepository) Create(review *domain.Review) *domain.Review {
	return r.store.Add(review)
}

func (r *ReviewRepository) ByProductID(productID string) []*domain.Review {
	return r.store.FindBy("product_id", productID)
}

func (r *ReviewRepository) ByUserID(userID string) []*domain.Review {
	return r.store.FindBy("user_id", userID)
}
