package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopflow/internal/domain"
)

func TestPaymentService_ProcessPayment_Approved(t *testing.T) {
	f := newFixtures(t)
	user := f.seedUser(t, "ayse")
	product := f.seedProduct(t, "Klavye", 100, 5)
	order := f.seedOrder(t, user.ID, []domain.OrderLine{{ProductID: product.ID, Quantity: 2}})

	paymentSvc := f.paymentService(t, approveAll)

	res := paymentSvc.ProcessPayment(order.ID, user.ID, order.TotalAmount, domain.PaymentMethodCreditCard)
	require.True(t, res.Success, res.Error)

	tx := res.Data
	assert.Equal(t, domain.TransactionStatusSuccess, tx.Status)
	assert.NotEmpty(t, tx.TransactionID)
	assert.Equal(t, order.ID, tx.OrderID)

	paid, ok := f.orders.FindByID(order.ID)
	require.True(t, ok)
	assert.Equal(t, domain.PaymentStatusPaid, paid.PaymentStatus)
	assert.Equal(t, domain.OrderStatusProcessing, paid.Status)
}

func TestPaymentService_ProcessPayment_Declined(t *testing.T) {
	f := newFixtures(t)
	user := f.seedUser(t, "ayse")
	product := f.seedProduct(t, "Klavye", 100, 5)
	order := f.seedOrder(t, user.ID, []domain.OrderLine{{ProductID: product.ID, Quantity: 1}})

	paymentSvc := f.paymentService(t, declineAll)

	res := paymentSvc.ProcessPayment(order.ID, user.ID, order.TotalAmount, domain.PaymentMethodCreditCard)
	require.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), domain.ErrGatewayDeclined)

	// reddedilen deneme de kayda geçer ve zarfta taşınır
	require.NotNil(t, res.Data)
	assert.Equal(t, domain.TransactionStatusFailed, res.Data.Status)

	history := f.payments.ByOrderID(order.ID)
	require.Len(t, history, 1)
	assert.Equal(t, domain.TransactionStatusFailed, history[0].Status)

	unpaid, _ := f.orders.FindByID(order.ID)
	assert.Equal(t, domain.PaymentStatusUnpaid, unpaid.PaymentStatus)
	assert.Equal(t, domain.OrderStatusPending, unpaid.Status)
}

func TestPaymentService_ProcessPayment_Validation(t *testing.T) {
	f := newFixtures(t)
	user := f.seedUser(t, "ayse")
	other := f.seedUser(t, "mehmet")
	product := f.seedProduct(t, "Klavye", 100, 5)
	order := f.seedOrder(t, user.ID, []domain.OrderLine{{ProductID: product.ID, Quantity: 1}})

	paymentSvc := f.paymentService(t, approveAll)

	t.Run("bilinmeyen sipariş", func(t *testing.T) {
		res := paymentSvc.ProcessPayment("yok", user.ID, 100, domain.PaymentMethodCreditCard)
		require.False(t, res.Success)
		assert.ErrorIs(t, res.Err(), domain.ErrInvalidPayment)
	})

	t.Run("başka kullanıcının siparişi", func(t *testing.T) {
		res := paymentSvc.ProcessPayment(order.ID, other.ID, order.TotalAmount, domain.PaymentMethodCreditCard)
		require.False(t, res.Success)
		assert.ErrorIs(t, res.Err(), domain.ErrInvalidPayment)
	})

	t.Run("tutar uyuşmazlığı", func(t *testing.T) {
		res := paymentSvc.ProcessPayment(order.ID, user.ID, order.TotalAmount+1, domain.PaymentMethodCreditCard)
		require.False(t, res.Success)
		assert.ErrorIs(t, res.Err(), domain.ErrInvalidPayment)
		assert.Equal(t, domain.KindValidation, res.Kind())
	})

	unpaid, _ := f.orders.FindByID(order.ID)
	assert.Equal(t, domain.PaymentStatusUnpaid, unpaid.PaymentStatus, "reddedilen doğrulamalar siparişi etkilemez")
	assert.Empty(t, f.payments.ByOrderID(order.ID), "doğrulama hataları işlem kaydı bırakmaz")
}

func TestPaymentService_ProcessPayment_AmountWithinEpsilon(t *testing.T) {
	f := newFixtures(t)
	user := f.seedUser(t, "ayse")
	product := f.seedProduct(t, "Klavye", 33.33, 5)
	order := f.seedOrder(t, user.ID, []domain.OrderLine{{ProductID: product.ID, Quantity: 3}})

	paymentSvc := f.paymentService(t, approveAll)

	// 3 x 33.33 float64 toplamı 99.99'dan sapabilir; epsilon bunu tolere eder
	res := paymentSvc.ProcessPayment(order.ID, user.ID, 99.99, domain.PaymentMethodWallet)
	require.True(t, res.Success, res.Error)
}

func TestPaymentService_ProcessPayment_AlreadyPaid(t *testing.T) {
	f := newFixtures(t)
	user := f.seedUser(t, "ayse")
	product := f.seedProduct(t, "Klavye", 100, 5)
	order := f.seedOrder(t, user.ID, []domain.OrderLine{{ProductID: product.ID, Quantity: 1}})

	paymentSvc := f.paymentService(t, approveAll)

	first := paymentSvc.ProcessPayment(order.ID, user.ID, order.TotalAmount, domain.PaymentMethodCreditCard)
	require.True(t, first.Success, first.Error)

	second := paymentSvc.ProcessPayment(order.ID, user.ID, order.TotalAmount, domain.PaymentMethodCreditCard)
	require.False(t, second.Success)
	assert.ErrorIs(t, second.Err(), domain.ErrOrderAlreadyPaid)
	assert.Equal(t, domain.KindConflict, second.Kind())

	assert.Len(t, f.payments.ByOrderID(order.ID), 1, "mükerrer tahsilat kaydı oluşmaz")
}

func TestPaymentService_RetryAfterDecline(t *testing.T) {
	f := newFixtures(t)
	user := f.seedUser(t, "ayse")
	product := f.seedProduct(t, "Klavye", 100, 5)
	order := f.seedOrder(t, user.ID, []domain.OrderLine{{ProductID: product.ID, Quantity: 1}})

	// ret devreyi açmaz; sonraki deneme sağlayıcıya ulaşabilmelidir
	attempts := 0
	gateway := func(tx *domain.PaymentTransaction) error {
		attempts++
		if attempts == 1 {
			return domain.ErrGatewayDeclined
		}
		return nil
	}

	paymentSvc := f.paymentService(t, gateway)

	declined := paymentSvc.ProcessPayment(order.ID, user.ID, order.TotalAmount, domain.PaymentMethodCreditCard)
	require.False(t, declined.Success)

	approved := paymentSvc.ProcessPayment(order.ID, user.ID, order.TotalAmount, domain.PaymentMethodCreditCard)
	require.True(t, approved.Success, approved.Error)
	assert.Equal(t, 2, attempts)

	history := f.payments.ByOrderID(order.ID)
	assert.Len(t, history, 2, "hem başarısız hem başarılı deneme kayıtlıdır")
}

func TestPaymentService_GetPaymentHistory(t *testing.T) {
	f := newFixtures(t)
	user := f.seedUser(t, "ayse")
	product := f.seedProduct(t, "Klavye", 100, 10)
	first := f.seedOrder(t, user.ID, []domain.OrderLine{{ProductID: product.ID, Quantity: 1}})
	second := f.seedOrder(t, user.ID, []domain.OrderLine{{ProductID: product.ID, Quantity: 2}})

	paymentSvc := f.paymentService(t, approveAll)
	require.True(t, paymentSvc.ProcessPayment(first.ID, user.ID, first.TotalAmount, domain.PaymentMethodCreditCard).Success)
	require.True(t, paymentSvc.ProcessPayment(second.ID, user.ID, second.TotalAmount, domain.PaymentMethodWallet).Success)

	res := paymentSvc.GetPaymentHistory(user.ID)
	require.True(t, res.Success)
	assert.Len(t, res.Data, 2)
}
