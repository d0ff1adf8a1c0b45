package service

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"shopflow/internal/auth"
	"shopflow/internal/domain"
	"shopflow/internal/repository"
	"shopflow/pkg/logger"
)

// fixtures testler için uçtan uca bağlanmış servis ağacı; her test kendi
// temiz kopyasını alır.
type fixtures struct {
	users    domain.UserRepository
	products domain.ProductRepository
	orders   domain.OrderRepository
	reviews  domain.ReviewRepository
	payments domain.PaymentRepository

	auditSvc   domain.AuditLogService
	userSvc    domain.UserService
	catalogSvc domain.CatalogService
	orderSvc   domain.OrderService
	reviewSvc  domain.ReviewService
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()

	log := logger.New(logger.ErrorLevel, io.Discard)

	f := &fixtures{
		users:    repository.NewUserRepository(log),
		products: repository.NewProductRepository(log),
		orders:   repository.NewOrderRepository(log),
		reviews:  repository.NewReviewRepository(log),
		payments: repository.NewPaymentRepository(log),
	}

	f.auditSvc = NewAuditLogService(repository.NewAuditLogRepository(log), 2, 64, log)
	t.Cleanup(f.auditSvc.Shutdown)

	f.userSvc = NewUserService(f.users, auth.NewBcryptHasher(), f.auditSvc, log)
	f.catalogSvc = NewCatalogService(f.products, f.auditSvc, log)
	f.orderSvc = NewOrderService(f.orders, f.products, f.users, f.auditSvc, log)
	f.reviewSvc = NewReviewService(f.reviews, f.products, f.auditSvc, log)

	return f
}

func (f *fixtures) paymentService(t *testing.T, gateway domain.GatewayFunc) domain.PaymentService {
	t.Helper()
	log := logger.New(logger.ErrorLevel, io.Discard)
	return NewPaymentService(f.payments, f.orders, f.orderSvc, gateway, f.auditSvc, log)
}

func (f *fixtures) seedUser(t *testing.T, username string) *domain.User {
	t.Helper()
	user := f.users.Create(&domain.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     domain.UserRoleCustomer,
	})
	require.NotEmpty(t, user.ID)
	return user
}

func (f *fixtures) seedProduct(t *testing.T, name string, price float64, stock int) *domain.Product {
	t.Helper()
	product := f.products.Create(&domain.Product{
		Name:     name,
		Price:    price,
		Category: domain.CategoryElectronics,
		Stock:    stock,
	})
	require.NotEmpty(t, product.ID)
	return product
}

func (f *fixtures) seedOrder(t *testing.T, userID string, lines []domain.OrderLine) *domain.Order {
	t.Helper()
	res := f.orderSvc.CreateOrder(userID, lines, domain.Address{City: "İstanbul"}, domain.PaymentMethodCreditCard)
	require.True(t, res.Success, res.Error)
	return res.Data
}

// approveAll her işlemi onaylayan sağlayıcı.
func approveAll(tx *domain.PaymentTransaction) error {
	return nil
}

// declineAll her işlemi reddeden sağlayıcı.
func declineAll(tx *domain.PaymentTransaction) error {
	return domain.ErrGatewayDeclined
}
