package domain

type EntityType string
type ActionType string

const (
	EntityTypeUser    EntityType = "user"
	EntityTypeProduct EntityType = "product"
	EntityTypeOrder   EntityType = "order"
	EntityTypeReview  EntityType = "review"
	EntityTypePayment EntityType = "payment"

	ActionTypeCreate ActionType = "create"
	ActionTypeUpdate ActionType = "update"
	ActionTypeDelete ActionType = "delete"
)

type AuditLog struct {
	BaseEntity
	EntityType EntityType `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	Action     ActionType `json:"action"`
	Details    string     `json:"details,omitempty"`
}

type AuditLogRepository interface {
	Create(log *AuditLog) *AuditLog
	ByEntity(entityType EntityType, entityID string) []*AuditLog
	All(limit, offset int) []*AuditLog
}

type AuditLogService interface {
	LogAction(entityType EntityType, entityID string, action ActionType, details string)
	GetEntityLogs(entityType EntityType, entityID string) []*AuditLog
	GetAllLogs(page, pageSize int) []*AuditLog
	Shutdown()
}
