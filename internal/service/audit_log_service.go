package service

import (
	"shopflow/internal/concurrent"
	"shopflow/internal/domain"
	"shopflow/pkg/logger"
)

// AuditLogService mutasyon izini asenkron yazar; kuyruk dolduğunda kayıt
// düşer, alan operasyonları denetim yüzünden asla beklemez.
type AuditLogService struct {
	repo   domain.AuditLogRepository
	pool   *concurrent.WorkerPool
	logger logger.Logger
}

func NewAuditLogService(
	repo domain.AuditLogRepository,
	workers, queueSize int,
	logger logger.Logger,
) domain.AuditLogService {
	svc := &AuditLogService{
		repo:   repo,
		logger: logger,
	}

	svc.pool = concurrent.NewWorkerPool(workers, queueSize, func(entry *domain.AuditLog) error {
		svc.repo.Create(entry)
		return nil
	}, logger)
	svc.pool.Start()

	return svc
}

func (s *AuditLogService) LogAction(entityType domain.EntityType, entityID string, action domain.ActionType, details string) {
	entry := &domain.AuditLog{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Details:    details,
	}

	s.pool.Submit(entry)
}

func (s *AuditLogService) GetEntityLogs(entityType domain.EntityType, entityID string) []*domain.AuditLog {
	return s.repo.ByEntity(entityType, entityID)
}

func (s *AuditLogService) GetAllLogs(page, pageSize int) []*domain.AuditLog {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	return s.repo.All(pageSize, (page-1)*pageSize)
}

func (s *AuditLogService) Shutdown() {
	s.pool.Stop()
}
