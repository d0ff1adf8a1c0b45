package service

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"

	"shopflow/internal/domain"
	"shopflow/pkg/logger"
)

type CatalogService struct {
	repo     domain.ProductRepository
	auditSvc domain.AuditLogService
	logger   logger.Logger
}

func NewCatalogService(
	repo domain.ProductRepository,
	auditSvc domain.AuditLogService,
	logger logger.Logger,
) domain.CatalogService {
	return &CatalogService{
		repo:     repo,
		auditSvc: auditSvc,
		logger:   logger,
	}
}

func (s *CatalogService) AddProduct(product *domain.Product) domain.Result[*domain.Product] {
	if product.Price <= 0 {
		return domain.Fail[*domain.Product](fmt.Errorf("%w: fiyat %.2f", domain.ErrInvalidPrice, product.Price))
	}
	if product.Stock < 0 {
		return domain.Fail[*domain.Product](fmt.Errorf("%w: stok %d", domain.ErrInvalidPrice, product.Stock))
	}
	if product.Category == "" {
		product.Category = domain.CategoryOther
	}

	created := s.repo.Create(product)

	s.auditSvc.LogAction(domain.EntityTypeProduct, created.ID, domain.ActionTypeCreate,
		fmt.Sprintf("Ürün oluşturuldu: %s", created.Name))

	return domain.OK(created)
}

func (s *CatalogService) GetProduct(id string) domain.Result[*domain.Product] {
	product, exists := s.repo.FindByID(id)
	if !exists {
		return domain.Fail[*domain.Product](fmt.Errorf("%w: %s", domain.ErrProductNotFound, id))
	}

	return domain.OK(product)
}

func (s *CatalogService) ListProducts(category domain.ProductCategory) domain.Result[[]*domain.Product] {
	if category == "" {
		return domain.OK(s.repo.All())
	}

	return domain.OK(s.repo.ByCategory(category))
}

func (s *CatalogService) UpdateProduct(id string, fields map[string]interface{}) domain.Result[*domain.Product] {
	// Depo katmanı sayısal türler arasında dönüşüme izin verir; doğrulama da
	// tür değil değer üzerinden yapılmalı, yoksa -7.0 gibi bir stok int
	// kontrolünü atlayıp yazılır.
	if raw, ok := fields["price"]; ok {
		if price, err := cast.ToFloat64E(raw); err == nil && price <= 0 {
			return domain.Fail[*domain.Product](fmt.Errorf("%w: fiyat %.2f", domain.ErrInvalidPrice, price))
		}
	}
	if raw, ok := fields["stock"]; ok {
		if stock, err := cast.ToFloat64E(raw); err == nil && stock < 0 {
			return domain.Fail[*domain.Product](fmt.Errorf("%w: stok %.0f", domain.ErrInvalidPrice, stock))
		}
	}

	product, err := s.repo.UpdateFields(id, fields)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Fail[*domain.Product](fmt.Errorf("%w: %s", domain.ErrProductNotFound, id))
		}
		return domain.Fail[*domain.Product](fmt.Errorf("ürün güncellenemedi: %w", err))
	}

	s.auditSvc.LogAction(domain.EntityTypeProduct, id, domain.ActionTypeUpdate,
		fmt.Sprintf("Ürün güncellendi: %s", product.Name))

	return domain.OK(product)
}

func (s *CatalogService) DeleteProduct(id string, requestingRole domain.UserRole) domain.Result[*domain.Product] {
	if requestingRole != domain.UserRoleAdmin && requestingRole != domain.UserRoleSeller {
		return domain.Fail[*domain.Product](domain.ErrUnauthorized)
	}

	product, exists := s.repo.FindByID(id)
	if !exists {
		return domain.Fail[*domain.Product](fmt.Errorf("%w: %s", domain.ErrProductNotFound, id))
	}

	s.repo.Delete(id)

	s.auditSvc.LogAction(domain.EntityTypeProduct, id, domain.ActionTypeDelete,
		fmt.Sprintf("Ürün silindi: %s", product.Name))

	return domain.OKMessage[*domain.Product](nil, "ürün silindi")
}
