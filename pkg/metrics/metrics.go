package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shopflow_orders_created_total",
			Help: "Oluşturulan toplam sipariş sayısı",
		},
	)

	OrdersCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shopflow_orders_cancelled_total",
			Help: "İptal edilen toplam sipariş sayısı",
		},
	)

	OrderStatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopflow_order_status_transitions_total",
			Help: "Sipariş durumu geçiş sayısı",
		},
		[]string{"to"},
	)

	PaymentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopflow_payments_processed_total",
			Help: "İşlenen toplam ödeme sayısı",
		},
		[]string{"status"},
	)

	StockReserved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shopflow_stock_reserved_total",
			Help: "Rezerve edilen toplam stok adedi",
		},
	)

	StockReleased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shopflow_stock_released_total",
			Help: "İade edilen toplam stok adedi",
		},
	)

	ReviewsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shopflow_reviews_submitted_total",
			Help: "Gönderilen toplam değerlendirme sayısı",
		},
	)

	AuditQueueSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shopflow_audit_queue_size",
			Help: "Denetim kuyruğundaki bekleyen kayıt sayısı",
		},
	)

	AuditDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shopflow_audit_dropped_total",
			Help: "Kuyruk dolu olduğu için atılan denetim kaydı sayısı",
		},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shopflow_cache_hits_total",
			Help: "Önbellek isabet sayısı",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shopflow_cache_misses_total",
			Help: "Önbellek isabet etmeme sayısı",
		},
	)
)

func RecordPayment(status string) {
	PaymentsProcessed.WithLabelValues(status).Inc()
}

func RecordStatusTransition(to string) {
	OrderStatusTransitions.WithLabelValues(to).Inc()
}

func RecordStockReserved(quantity int) {
	StockReserved.Add(float64(quantity))
}

func RecordStockReleased(quantity int) {
	StockReleased.Add(float64(quantity))
}

func RecordCacheHit() {
	CacheHits.Inc()
}

func RecordCacheMiss() {
	CacheMisses.Inc()
}
