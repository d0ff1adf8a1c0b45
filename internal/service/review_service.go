package service

import (
	"fmt"
	"math"

	"shopflow/internal/domain"
	"shopflow/pkg/logger"
	"shopflow/pkg/metrics"
)

type ReviewService struct {
	repo        domain.ReviewRepository
	productRepo domain.ProductRepository
	auditSvc    domain.AuditLogService
	logger      logger.Logger
}

func NewReviewService(
	repo domain.ReviewRepository,
	productRepo domain.ProductRepository,
	auditSvc domain.AuditLogService,
	logger logger.Logger,
) domain.ReviewService {
	return &ReviewService{
		repo:        repo,
		productRepo: productRepo,
		auditSvc:    auditSvc,
		logger:      logger,
	}
}

func (s *ReviewService) SubmitReview(review *domain.Review) domain.Result[*domain.Review] {
	if review.Rating < 1 || review.Rating > 5 {
		return domain.Fail[*domain.Review](fmt.Errorf("%w: %d", domain.ErrInvalidRating, review.Rating))
	}

	if _, exists := s.productRepo.FindByID(review.ProductID); !exists {
		return domain.Fail[*domain.Review](fmt.Errorf("%w: %s", domain.ErrProductNotFound, review.ProductID))
	}

	created := s.repo.Create(review)

	// ürün puanı her zaman mevcut tüm değerlendirmelerin ortalamasıdır
	reviews := s.repo.ByProductID(review.ProductID)
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	rating := math.Round(float64(sum)/float64(len(reviews))*10) / 10

	if err := s.productRepo.ApplyRating(review.ProductID, rating, len(reviews)); err != nil {
		s.logger.Error("Ürün puanı güncellenemedi", map[string]interface{}{
			"product_id": review.ProductID,
			"error":      err.Error(),
		})
		return domain.Fail[*domain.Review](err)
	}

	metrics.ReviewsSubmitted.Inc()

	s.auditSvc.LogAction(domain.EntityTypeReview, created.ID, domain.ActionTypeCreate,
		fmt.Sprintf("Değerlendirme gönderildi: %s, puan %d", review.ProductID, review.Rating))

	return domain.OK(created)
}

func (s *ReviewService) GetProductReviews(productID string) domain.Result[[]*domain.Review] {
	return domain.OK(s.repo.ByProductID(productID))
}

func (s *ReviewService) GetUserReviews(userID string) domain.Result[[]*domain.Review] {
	return domain.OK(s.repo.ByUserID(userID))
}
