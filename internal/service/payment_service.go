package service

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"shopflow/internal/domain"
	"shopflow/pkg/circuitbreaker"
	"shopflow/pkg/logger"
	"shopflow/pkg/metrics"
)

// amountEpsilon kalem ara toplamlarının float64 ile toplanmasından doğan
// sapmayı tolere eder.
const amountEpsilon = 0.005

type PaymentService struct {
	repo      domain.PaymentRepository
	orderRepo domain.OrderRepository
	orderSvc  domain.OrderService
	gateway   domain.GatewayFunc
	breaker   *circuitbreaker.CircuitBreaker
	auditSvc  domain.AuditLogService
	logger    logger.Logger
}

func NewPaymentService(
	repo domain.PaymentRepository,
	orderRepo domain.OrderRepository,
	orderSvc domain.OrderService,
	gateway domain.GatewayFunc,
	auditSvc domain.AuditLogService,
	logger logger.Logger,
) domain.PaymentService {
	return &PaymentService{
		repo:      repo,
		orderRepo: orderRepo,
		orderSvc:  orderSvc,
		gateway:   gateway,
		auditSvc:  auditSvc,
		logger:    logger,
		breaker: circuitbreaker.New(circuitbreaker.Settings{
			Name: "payment-gateway",
			// ret geçerli bir sağlayıcı cevabıdır, devreyi açmaz
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, domain.ErrGatewayDeclined)
			},
		}),
	}
}

// RandomGateway başarı oranına göre karar veren varsayılan sağlayıcı.
func RandomGateway(successRate float64) domain.GatewayFunc {
	return func(tx *domain.PaymentTransaction) error {
		if rand.Float64() < successRate {
			return nil
		}
		return domain.ErrGatewayDeclined
	}
}

func (s *PaymentService) ProcessPayment(
	orderID, userID string,
	amount float64,
	method domain.PaymentMethod,
) domain.Result[*domain.PaymentTransaction] {
	order, exists := s.orderRepo.FindByID(orderID)
	if !exists {
		return domain.Fail[*domain.PaymentTransaction](fmt.Errorf("%w: sipariş bulunamadı: %s", domain.ErrInvalidPayment, orderID))
	}

	if order.UserID != userID {
		return domain.Fail[*domain.PaymentTransaction](fmt.Errorf("%w: sipariş başka bir kullanıcıya ait", domain.ErrInvalidPayment))
	}

	if math.Abs(order.TotalAmount-amount) > amountEpsilon {
		return domain.Fail[*domain.PaymentTransaction](fmt.Errorf("%w: tutar uyuşmuyor (beklenen: %.2f, gelen: %.2f)",
			domain.ErrInvalidPayment, order.TotalAmount, amount))
	}

	if order.PaymentStatus == domain.PaymentStatusPaid {
		return domain.Fail[*domain.PaymentTransaction](domain.ErrOrderAlreadyPaid)
	}

	tx := &domain.PaymentTransaction{
		OrderID:       orderID,
		UserID:        userID,
		Amount:        amount,
		Method:        method,
		TransactionID: uuid.NewString(),
	}

	_, gatewayErr := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.gateway(tx)
	})

	if gatewayErr != nil {
		// başarısız deneme de kayda geçer; çağırana hem hata hem işlem döner
		tx.Status = domain.TransactionStatusFailed
		recorded := s.repo.Create(tx)

		metrics.RecordPayment(string(domain.TransactionStatusFailed))
		s.logger.Warn("Ödeme reddedildi", map[string]interface{}{
			"order_id": orderID,
			"user_id":  userID,
			"amount":   amount,
			"error":    gatewayErr.Error(),
		})

		s.auditSvc.LogAction(domain.EntityTypePayment, recorded.ID, domain.ActionTypeCreate,
			fmt.Sprintf("Ödeme başarısız: %.2f", amount))

		return domain.FailWith(recorded, gatewayErr)
	}

	tx.Status = domain.TransactionStatusSuccess
	recorded := s.repo.Create(tx)

	if res := s.orderSvc.MarkPaid(orderID); !res.Success {
		s.logger.Error("Sipariş ödendi olarak işaretlenemedi", map[string]interface{}{
			"order_id": orderID,
			"error":    res.Error,
		})
	}

	metrics.RecordPayment(string(domain.TransactionStatusSuccess))

	s.auditSvc.LogAction(domain.EntityTypePayment, recorded.ID, domain.ActionTypeCreate,
		fmt.Sprintf("Ödeme alındı: %.2f", amount))

	return domain.OK(recorded)
}

func (s *PaymentService) GetPaymentHistory(userID string) domain.Result[[]*domain.PaymentTransaction] {
	return domain.OK(s.repo.ByUserID(userID))
}
