package domain

import "time"

type OrderStatus string
type PaymentStatus string
type PaymentMethod string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"

	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodDebitCard      PaymentMethod = "debit_card"
	PaymentMethodWallet         PaymentMethod = "wallet"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// OrderLine sipariş oluşturma isteğindeki ürün/adet çifti.
type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderItem sipariş anında dondurulan kalem; fiyat bir daha hesaplanmaz.
type OrderItem struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Quantity     int     `json:"quantity"`
	PriceAtOrder float64 `json:"price_at_order"`
}

func (i OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.PriceAtOrder
}

type Order struct {
	BaseEntity
	UserID          string        `json:"user_id"`
	Items           []OrderItem   `json:"items"`
	TotalAmount     float64       `json:"total_amount"`
	Status          OrderStatus   `json:"status"`
	ShippingAddress Address       `json:"shipping_address"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	ShippedAt       *time.Time    `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time    `json:"delivered_at,omitempty"`
}

type OrderRepository interface {
	Create(order *Order) *Order
	FindByID(id string) (*Order, bool)
	ByUserID(userID string) []*Order
	Mutate(id string, fn func(order *Order) error) (*Order, error)
}

type OrderService interface {
	CreateOrder(userID string, lines []OrderLine, shippingAddress Address, method PaymentMethod) Result[*Order]
	GetOrder(id string) Result[*Order]
	GetOrdersForUser(userID string) Result[[]*Order]
	SetStatus(orderID string, status OrderStatus) Result[*Order]

	// MarkPaid yalnızca ödeme servisi tarafından, başarılı bir tahsilatın
	// yan etkisi olarak çağrılır; siparişi Paid + Processing durumuna taşır.
	MarkPaid(orderID string) Result[*Order]
}
