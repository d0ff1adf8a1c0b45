package repository

import (
	"shopflow/internal/domain"
	"shopflow/pkg/logger"
)

type AuditLogRepository struct {
	store  *Store[domain.AuditLog, *domain.AuditLog]
	logger logger.Logger
}

func NewAuditLogRepository(logger logger.Logger) domain.AuditLogRepository {
	return &AuditLogRepository{
		store:  NewStore[domain.AuditLog, *domain.AuditLog](),
		logger: logger,
	}
}

func (r *AuditLogRepository) Create(log *domain.AuditLog) *domain.AuditLog {
	return r.store.Add(log)
}

func (r *AuditLogRepository) ByEntity(entityType domain.EntityType, entityID string) []*domain.AuditLog {
	var out []*domain.AuditLog
	for _, log := range r.store.FindBy("entity_id", entityID) {
		if log.EntityType == entityType {
			out = append(out, log)
		}
	}
	return out
}

func (r *AuditLogRepository) All(limit, offset int) []*domain.AuditLog {
	logs := r.store.All()

	if offset >= len(logs) {
		return nil
	}

	end := offset + limit
	if limit <= 0 || end > len(logs) {
		end = len(logs)
	}

	return logs[offset:end]
}
