package service

import (
	"context"

	"shopflow/internal/domain"
	"shopflow/pkg/cache"
	"shopflow/pkg/logger"
)

// CachedCatalogService wraps CatalogService with read-through caching
type CachedCatalogService struct {
	catalog      domain.CatalogService
	cache        cache.Cache
	cacheManager cache.CacheStrategy
	logger       logger.Logger
}

func NewCachedCatalogService(
	catalog domain.CatalogService,
	cacheInstance cache.Cache,
	cacheManager cache.CacheStrategy,
	logger logger.Logger,
) domain.CatalogService {
	return &CachedCatalogService{
		catalog:      catalog,
		cache:        cacheInstance,
		cacheManager: cacheManager,
		logger:       logger,
	}
}

func (s *CachedCatalogService) GetProduct(id string) domain.Result[*domain.Product] {
	ctx := context.Background()
	key := cache.ProductCacheKey(id)

	var product *domain.Product
	err := s.cacheManager.ReadThrough(ctx, key, &product, func() (interface{}, error) {
		res := s.catalog.GetProduct(id)
		if !res.Success {
			return nil, res.Err()
		}
		return res.Data, nil
	}, cache.MediumExpiration)

	if err != nil {
		return domain.Fail[*domain.Product](err)
	}

	return domain.OK(product)
}

func (s *CachedCatalogService) ListProducts(category domain.ProductCategory) domain.Result[[]*domain.Product] {
	ctx := context.Background()

	key := cache.ProductListKey
	if category != "" {
		key = cache.ProductCategoryCacheKey(string(category))
	}

	var products []*domain.Product
	err := s.cacheManager.ReadThrough(ctx, key, &products, func() (interface{}, error) {
		res := s.catalog.ListProducts(category)
		if !res.Success {
			return nil, res.Err()
		}
		return res.Data, nil
	}, cache.ShortExpiration)

	if err != nil {
		return domain.Fail[[]*domain.Product](err)
	}

	return domain.OK(products)
}

func (s *CachedCatalogService) AddProduct(product *domain.Product) domain.Result[*domain.Product] {
	res := s.catalog.AddProduct(product)
	if res.Success {
		s.invalidate(res.Data.ID)
	}
	return res
}

func (s *CachedCatalogService) UpdateProduct(id string, fields map[string]interface{}) domain.Result[*domain.Product] {
	res := s.catalog.UpdateProduct(id, fields)
	if res.Success {
		s.invalidate(id)
	}
	return res
}

func (s *CachedCatalogService) DeleteProduct(id string, requestingRole domain.UserRole) domain.Result[*domain.Product] {
	res := s.catalog.DeleteProduct(id, requestingRole)
	if res.Success {
		s.invalidate(id)
	}
	return res
}

func (s *CachedCatalogService) invalidate(id string) {
	if err := cache.InvalidateProductCache(context.Background(), s.cache, id); err != nil {
		s.logger.Error("Ürün önbelleği temizlenemedi", map[string]interface{}{"id": id, "error": err.Error()})
	}
}
