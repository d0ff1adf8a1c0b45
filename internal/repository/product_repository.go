package repository

import (
	"errors"
	"fmt"
	"sync"

	"shopflow/internal/domain"
	"shopflow/pkg/logger"
	"shopflow/pkg/metrics"
)

type ProductRepository struct {
	store  *Store[domain.Product, *domain.Product]
	logger logger.Logger

	// stockMu rezervasyon ve iadeyi serileştirir; çok kalemli bir sipariş
	// başka bir rezervasyonla aynı ürün üzerinde yarışamaz.
	stockMu sync.Mutex
}

func NewProductRepository(logger logger.Logger) domain.ProductRepository {
	return &ProductRepository{
		store:  NewStore[domain.Product, *domain.Product](),
		logger: logger,
	}
}

func (r *ProductRepository) Create(product *domain.Product) *domain.Product {
	return r.store.Add(product)
}

func (r *ProductRepository) FindByID(id string) (*domain.Product, bool) {
	return r.store.Get(id)
}

func (r *ProductRepository) All() []*domain.Product {
	return r.store.All()
}

func (r *ProductRepository) ByCategory(category domain.ProductCategory) []*domain.Product {
	return r.store.FindBy("category", category)
}

func (r *ProductRepository) UpdateFields(id string, fields map[string]interface{}) (*domain.Product, error) {
	product, err := r.store.Update(id, fields)
	if err != nil {
		r.logger.Error("Ürün güncellenemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) Delete(id string) bool {
	return r.store.Delete(id)
}

// ReserveStock tüm kalemler için stok düşümünü tek mantıksal işlem olarak
// uygular. Bir kalem başarısız olursa önceki düşümler geri alınır; kısmi
// mutasyon dışarıdan asla gözlenmez.
func (r *ProductRepository) ReserveStock(lines []domain.OrderLine) ([]domain.OrderItem, error) {
	r.stockMu.Lock()
	defer r.stockMu.Unlock()

	items := make([]domain.OrderItem, 0, len(lines))

	for _, line := range lines {
		captured, err := r.decrement(line)
		if err != nil {
			r.rollback(items)
			return nil, err
		}
		items = append(items, captured)
	}

	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	metrics.RecordStockReserved(total)

	return items, nil
}

func (r *ProductRepository) decrement(line domain.OrderLine) (domain.OrderItem, error) {
	var captured domain.OrderItem

	_, err := r.store.Mutate(line.ProductID, func(product *domain.Product) error {
		if product.Stock < line.Quantity {
			return fmt.Errorf("%w: %s (stok: %d, istenen: %d)",
				domain.ErrInsufficientStock, product.Name, product.Stock, line.Quantity)
		}

		product.Stock -= line.Quantity
		captured = domain.OrderItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			Quantity:     line.Quantity,
			PriceAtOrder: product.Price,
		}
		return nil
	})

	if errors.Is(err, domain.ErrRecordNotFound) {
		return captured, fmt.Errorf("%w: %s", domain.ErrProductNotFound, line.ProductID)
	}

	return captured, err
}

func (r *ProductRepository) rollback(items []domain.OrderItem) {
	for _, item := range items {
		if err := r.restore(item); err != nil {
			r.logger.Error("Stok geri alınamadı", map[string]interface{}{
				"product_id": item.ProductID,
				"quantity":   item.Quantity,
				"error":      err.Error(),
			})
		}
	}
}

// ReleaseStock iptal edilen siparişin kalemlerini stoka geri ekler.
func (r *ProductRepository) ReleaseStock(items []domain.OrderItem) error {
	r.stockMu.Lock()
	defer r.stockMu.Unlock()

	total := 0
	for _, item := range items {
		if err := r.restore(item); err != nil {
			return err
		}
		total += item.Quantity
	}
	metrics.RecordStockReleased(total)

	return nil
}

func (r *ProductRepository) restore(item domain.OrderItem) error {
	_, err := r.store.Mutate(item.ProductID, func(product *domain.Product) error {
		product.Stock += item.Quantity
		return nil
	})

	// Ürün bu arada katalogdan silinmiş olabilir; iade sessizce düşer.
	if errors.Is(err, domain.ErrRecordNotFound) {
		r.logger.Warn("İade edilecek ürün bulunamadı", map[string]interface{}{"product_id": item.ProductID})
		return nil
	}

	return err
}

// ApplyRating değerlendirme toplayıcısının hesapladığı ortalama ve sayacı
// ürüne işler.
func (r *ProductRepository) ApplyRating(id string, rating float64, count int) error {
	_, err := r.store.Mutate(id, func(product *domain.Product) error {
		product.Rating = rating
		product.ReviewsCount = count
		return nil
	})

	if errors.Is(err, domain.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}

	return err
}
