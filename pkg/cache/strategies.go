package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopflow/pkg/logger"
	"shopflow/pkg/metrics"
)

// Cache key constants
const (
	ProductPrefix        = "product"
	ProductByIDKey       = "product:id:%s"
	ProductListKey       = "product:list:all"
	ProductByCategoryKey = "product:list:category:%s"
)

// Cache expiration times
const (
	ShortExpiration  = 5 * time.Minute
	MediumExpiration = 30 * time.Minute
	LongExpiration   = 2 * time.Hour
)

// CacheStrategy defines the caching patterns the services rely on
type CacheStrategy interface {
	// Read-through: check cache first, on miss fetch from source and cache it
	ReadThrough(ctx context.Context, key string, dest interface{}, fetchFunc func() (interface{}, error), expiration time.Duration) error
}

type CacheManager struct {
	cache  Cache
	logger logger.Logger
}

func NewCacheManager(cache Cache, logger logger.Logger) CacheStrategy {
	return &CacheManager{
		cache:  cache,
		logger: logger,
	}
}

func (cm *CacheManager) ReadThrough(ctx context.Context, key string, dest interface{}, fetchFunc func() (interface{}, error), expiration time.Duration) error {
	err := cm.cache.Get(ctx, key, dest)
	if err == nil {
		metrics.RecordCacheHit()
		return nil
	}

	if err != ErrCacheMiss {
		cm.logger.Error("Cache okuma hatası", map[string]interface{}{"key": key, "error": err.Error()})
		// önbellek hatasında kaynağa düşülür
	} else {
		metrics.RecordCacheMiss()
	}

	data, err := fetchFunc()
	if err != nil {
		return err
	}

	if err := cm.cache.Set(ctx, key, data, expiration); err != nil {
		cm.logger.Error("Cache yazma hatası", map[string]interface{}{"key": key, "error": err.Error()})
	}

	return copyData(data, dest)
}

func copyData(src, dest interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func ProductCacheKey(id string) string {
	return fmt.Sprintf(ProductByIDKey, id)
}

func ProductCategoryCacheKey(category string) string {
	return fmt.Sprintf(ProductByCategoryKey, category)
}

// InvalidateProductCache ürün mutasyonlarından sonra tüm ürün anahtarlarını
// temizler.
func InvalidateProductCache(ctx context.Context, cache Cache, id string) error {
	if err := cache.Delete(ctx, ProductCacheKey(id)); err != nil {
		return err
	}
	return cache.DeletePattern(ctx, ProductPrefix+":list:*")
}
