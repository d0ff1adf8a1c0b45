package service

import (
	"errors"
	"fmt"
	"time"

	"shopflow/internal/domain"
	"shopflow/pkg/logger"
	"shopflow/pkg/metrics"
)

type OrderService struct {
	repo        domain.OrderRepository
	productRepo domain.ProductRepository
	userRepo    domain.UserRepository
	auditSvc    domain.AuditLogService
	logger      logger.Logger
}

func NewOrderService(
	repo domain.OrderRepository,
	productRepo domain.ProductRepository,
	userRepo domain.UserRepository,
	auditSvc domain.AuditLogService,
	logger logger.Logger,
) domain.OrderService {
	return &OrderService{
		repo:        repo,
		productRepo: productRepo,
		userRepo:    userRepo,
		auditSvc:    auditSvc,
		logger:      logger,
	}
}

func (s *OrderService) CreateOrder(
	userID string,
	lines []domain.OrderLine,
	shippingAddress domain.Address,
	method domain.PaymentMethod,
) domain.Result[*domain.Order] {
	if _, exists := s.userRepo.FindByID(userID); !exists {
		return domain.Fail[*domain.Order](fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID))
	}

	if len(lines) == 0 {
		return domain.Fail[*domain.Order](domain.ErrEmptyOrder)
	}

	// Ya tüm kalemler düşer ya hiçbiri; kısmi stok mutasyonu kalmaz.
	items, err := s.productRepo.ReserveStock(lines)
	if err != nil {
		s.logger.Error("Stok rezervasyonu başarısız", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return domain.Fail[*domain.Order](err)
	}

	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}

	order := &domain.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		Status:          domain.OrderStatusPending,
		ShippingAddress: shippingAddress,
		PaymentMethod:   method,
		PaymentStatus:   domain.PaymentStatusUnpaid,
	}

	created := s.repo.Create(order)
	metrics.OrdersCreated.Inc()

	s.auditSvc.LogAction(domain.EntityTypeOrder, created.ID, domain.ActionTypeCreate,
		fmt.Sprintf("Sipariş oluşturuldu: %.2f, %d kalem", created.TotalAmount, len(created.Items)))

	return domain.OK(created)
}

func (s *OrderService) GetOrder(id string) domain.Result[*domain.Order] {
	order, exists := s.repo.FindByID(id)
	if !exists {
		return domain.Fail[*domain.Order](fmt.Errorf("%w: %s", domain.ErrOrderNotFound, id))
	}

	return domain.OK(order)
}

func (s *OrderService) GetOrdersForUser(userID string) domain.Result[[]*domain.Order] {
	return domain.OK(s.repo.ByUserID(userID))
}

func (s *OrderService) SetStatus(orderID string, status domain.OrderStatus) domain.Result[*domain.Order] {
	switch status {
	case domain.OrderStatusShipped:
		return s.markShipped(orderID)
	case domain.OrderStatusDelivered:
		return s.markDelivered(orderID)
	case domain.OrderStatusCancelled:
		return s.cancel(orderID)
	default:
		// Pending başlangıç durumudur, Processing yalnızca başarılı ödemenin
		// yan etkisiyle girilir; ikisi de doğrudan istenemez.
		return domain.Fail[*domain.Order](fmt.Errorf("%w: %s", domain.ErrInvalidTransition, status))
	}
}

func (s *OrderService) markShipped(orderID string) domain.Result[*domain.Order] {
	order, err := s.repo.Mutate(orderID, func(order *domain.Order) error {
		if order.Status == domain.OrderStatusCancelled {
			return fmt.Errorf("%w: iptal edilmiş sipariş kargolanamaz", domain.ErrInvalidTransition)
		}

		order.Status = domain.OrderStatusShipped
		if order.ShippedAt == nil {
			now := time.Now()
			order.ShippedAt = &now
		}
		return nil
	})

	return s.transitionResult(orderID, order, err, domain.OrderStatusShipped)
}

func (s *OrderService) markDelivered(orderID string) domain.Result[*domain.Order] {
	order, err := s.repo.Mutate(orderID, func(order *domain.Order) error {
		if order.Status == domain.OrderStatusCancelled {
			return fmt.Errorf("%w: iptal edilmiş sipariş teslim edilemez", domain.ErrInvalidTransition)
		}

		order.Status = domain.OrderStatusDelivered
		if order.DeliveredAt == nil {
			now := time.Now()
			order.DeliveredAt = &now
		}
		return nil
	})

	return s.transitionResult(orderID, order, err, domain.OrderStatusDelivered)
}

// cancel siparişi iptal eder ve stok iadesini tam olarak bir kez uygular.
// Zaten iptal edilmiş sipariş için çağrı etkisiz bir başarıdır; kargoya
// verilmiş ya da teslim edilmiş sipariş iptal edilemez.
func (s *OrderService) cancel(orderID string) domain.Result[*domain.Order] {
	var restoreItems []domain.OrderItem

	order, err := s.repo.Mutate(orderID, func(order *domain.Order) error {
		switch order.Status {
		case domain.OrderStatusCancelled:
			// idempotent: ikinci iptal stok iadesini tekrarlamaz
			return nil
		case domain.OrderStatusShipped, domain.OrderStatusDelivered:
			return fmt.Errorf("%w: %s durumundaki sipariş iptal edilemez", domain.ErrInvalidTransition, order.Status)
		}

		restoreItems = order.Items
		order.Status = domain.OrderStatusCancelled
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Fail[*domain.Order](fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID))
		}
		return domain.Fail[*domain.Order](err)
	}

	if len(restoreItems) > 0 {
		if err := s.productRepo.ReleaseStock(restoreItems); err != nil {
			s.logger.Error("Stok iadesi başarısız", map[string]interface{}{"order_id": orderID, "error": err.Error()})
		}

		metrics.OrdersCancelled.Inc()
		metrics.RecordStatusTransition(string(domain.OrderStatusCancelled))

		s.auditSvc.LogAction(domain.EntityTypeOrder, orderID, domain.ActionTypeUpdate,
			"Sipariş iptal edildi, stok iade edildi")
	}

	return domain.OK(order)
}

func (s *OrderService) transitionResult(
	orderID string,
	order *domain.Order,
	err error,
	to domain.OrderStatus,
) domain.Result[*domain.Order] {
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Fail[*domain.Order](fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID))
		}
		return domain.Fail[*domain.Order](err)
	}

	metrics.RecordStatusTransition(string(to))

	s.auditSvc.LogAction(domain.EntityTypeOrder, orderID, domain.ActionTypeUpdate,
		fmt.Sprintf("Sipariş durumu güncellendi: %s", to))

	return domain.OK(order)
}

// MarkPaid başarılı tahsilatın yan etkisi: ödeme durumu Paid olur, bekleyen
// sipariş Processing'e ilerler.
func (s *OrderService) MarkPaid(orderID string) domain.Result[*domain.Order] {
	order, err := s.repo.Mutate(orderID, func(order *domain.Order) error {
		if order.PaymentStatus == domain.PaymentStatusPaid {
			return domain.ErrOrderAlreadyPaid
		}

		order.PaymentStatus = domain.PaymentStatusPaid
		if order.Status == domain.OrderStatusPending {
			order.Status = domain.OrderStatusProcessing
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Fail[*domain.Order](fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID))
		}
		return domain.Fail[*domain.Order](err)
	}

	metrics.RecordStatusTransition(string(domain.OrderStatusProcessing))

	s.auditSvc.LogAction(domain.EntityTypeOrder, orderID, domain.ActionTypeUpdate,
		"Sipariş ödemesi alındı")

	return domain.OK(order)
}
