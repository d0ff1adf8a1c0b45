package service

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopflow/internal/domain"
	"shopflow/internal/repository"
	"shopflow/pkg/logger"
)

func newAuditService(t *testing.T, workers, queueSize int) domain.AuditLogService {
	t.Helper()
	log := logger.New(logger.ErrorLevel, io.Discard)
	svc := NewAuditLogService(repository.NewAuditLogRepository(log), workers, queueSize, log)
	t.Cleanup(svc.Shutdown)
	return svc
}

func TestAuditLogService_LogAction(t *testing.T) {
	svc := newAuditService(t, 2, 64)

	svc.LogAction(domain.EntityTypeOrder, "siparis-1", domain.ActionTypeCreate, "Sipariş oluşturuldu")

	// yazım asenkron; kayıt kuyruktan işlenene kadar bekle
	require.Eventually(t, func() bool {
		return len(svc.GetEntityLogs(domain.EntityTypeOrder, "siparis-1")) == 1
	}, 2*time.Second, 10*time.Millisecond)

	logs := svc.GetEntityLogs(domain.EntityTypeOrder, "siparis-1")
	require.Len(t, logs, 1)
	assert.Equal(t, domain.ActionTypeCreate, logs[0].Action)
	assert.Equal(t, "Sipariş oluşturuldu", logs[0].Details)
	assert.NotEmpty(t, logs[0].ID)
}

func TestAuditLogService_GetEntityLogs_FiltersByEntity(t *testing.T) {
	svc := newAuditService(t, 2, 64)

	svc.LogAction(domain.EntityTypeOrder, "siparis-1", domain.ActionTypeCreate, "a")
	svc.LogAction(domain.EntityTypeOrder, "siparis-2", domain.ActionTypeCreate, "b")
	svc.LogAction(domain.EntityTypeUser, "siparis-1", domain.ActionTypeCreate, "c")

	require.Eventually(t, func() bool {
		return len(svc.GetAllLogs(1, 100)) == 3
	}, 2*time.Second, 10*time.Millisecond)

	logs := svc.GetEntityLogs(domain.EntityTypeOrder, "siparis-1")
	require.Len(t, logs, 1)
	assert.Equal(t, "a", logs[0].Details)
}

func TestAuditLogService_GetAllLogs_Pagination(t *testing.T) {
	svc := newAuditService(t, 1, 64)

	for i := 0; i < 25; i++ {
		svc.LogAction(domain.EntityTypeProduct, fmt.Sprintf("urun-%d", i), domain.ActionTypeUpdate, "")
	}

	require.Eventually(t, func() bool {
		return len(svc.GetAllLogs(1, 100)) == 25
	}, 2*time.Second, 10*time.Millisecond)

	first := svc.GetAllLogs(1, 10)
	assert.Len(t, first, 10)

	last := svc.GetAllLogs(3, 10)
	assert.Len(t, last, 5)

	beyond := svc.GetAllLogs(4, 10)
	assert.Empty(t, beyond)

	// geçersiz sayfa değerleri varsayılanlara çekilir
	defaulted := svc.GetAllLogs(0, 0)
	assert.Len(t, defaulted, 10)
}

func TestAuditLogService_ShutdownDrainsQueue(t *testing.T) {
	log := logger.New(logger.ErrorLevel, io.Discard)
	repo := repository.NewAuditLogRepository(log)
	svc := NewAuditLogService(repo, 1, 64, log)

	for i := 0; i < 20; i++ {
		svc.LogAction(domain.EntityTypeUser, fmt.Sprintf("kullanici-%d", i), domain.ActionTypeCreate, "")
	}

	svc.Shutdown()

	assert.Len(t, repo.All(100, 0), 20, "kapanış kuyruğu boşaltır")
}
