package domain

type TransactionStatus string

const (
	TransactionStatusSuccess  TransactionStatus = "success"
	TransactionStatusFailed   TransactionStatus = "failed"
	TransactionStatusRefunded TransactionStatus = "refunded"
)

type PaymentTransaction struct {
	BaseEntity
	OrderID       string            `json:"order_id"`
	UserID        string            `json:"user_id"`
	Amount        float64           `json:"amount"`
	Method        PaymentMethod     `json:"method"`
	TransactionID string            `json:"transaction_id"`
	Status        TransactionStatus `json:"status"`
}

// GatewayFunc dış ödeme sağlayıcısının kararını temsil eder. nil onay,
// ErrGatewayDeclined ret anlamına gelir; testler deterministik bir
// fonksiyon enjekte edebilir.
type GatewayFunc func(tx *PaymentTransaction) error

type PaymentRepository interface {
	Create(tx *PaymentTransaction) *PaymentTransaction
	ByUserID(userID string) []*PaymentTransaction
	ByOrderID(orderID string) []*PaymentTransaction
}

type PaymentService interface {
	ProcessPayment(orderID, userID string, amount float64, method PaymentMethod) Result[*PaymentTransaction]
	GetPaymentHistory(userID string) Result[[]*PaymentTransaction]
}
