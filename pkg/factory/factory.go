package factory

import (
	"context"

	"shopflow/internal/auth"
	"shopflow/internal/config"
	"shopflow/internal/domain"
	"shopflow/internal/repository"
	"shopflow/internal/service"
	"shopflow/pkg/cache"
	"shopflow/pkg/logger"
	"shopflow/pkg/redis"
)

type Factory interface {
	GetLogger() logger.Logger
	GetConfig() *config.Config
	GetCache() cache.Cache

	GetUserRepository() domain.UserRepository
	GetProductRepository() domain.ProductRepository
	GetOrderRepository() domain.OrderRepository
	GetReviewRepository() domain.ReviewRepository
	GetPaymentRepository() domain.PaymentRepository
	GetAuditLogRepository() domain.AuditLogRepository

	GetUserService() domain.UserService
	GetCatalogService() domain.CatalogService
	GetOrderService() domain.OrderService
	GetPaymentService() domain.PaymentService
	GetReviewService() domain.ReviewService
	GetAuditLogService() domain.AuditLogService

	Shutdown()
}

type AppFactory struct {
	config *config.Config
	logger logger.Logger
	cache  cache.Cache

	userRepository     domain.UserRepository
	productRepository  domain.ProductRepository
	orderRepository    domain.OrderRepository
	reviewRepository   domain.ReviewRepository
	paymentRepository  domain.PaymentRepository
	auditLogRepository domain.AuditLogRepository

	userService     domain.UserService
	catalogService  domain.CatalogService
	orderService    domain.OrderService
	paymentService  domain.PaymentService
	reviewService   domain.ReviewService
	auditLogService domain.AuditLogService
}

func NewFactory() (Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	factory := &AppFactory{
		config: cfg,
		logger: log,
	}

	// önbellek isteğe bağlıdır; redis yoksa katalog doğrudan çalışır
	if cfg.Redis.Enabled {
		client, err := redis.NewClient(context.Background(), redis.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		factory.cache = cache.NewRedisCache(client, log, "shopflow")
	}

	factory.initRepositories()
	factory.initServices()

	return factory, nil
}

func (f *AppFactory) initRepositories() {
	f.userRepository = repository.NewUserRepository(f.logger)
	f.productRepository = repository.NewProductRepository(f.logger)
	f.orderRepository = repository.NewOrderRepository(f.logger)
	f.reviewRepository = repository.NewReviewRepository(f.logger)
	f.paymentRepository = repository.NewPaymentRepository(f.logger)
	f.auditLogRepository = repository.NewAuditLogRepository(f.logger)
}

func (f *AppFactory) initServices() {
	f.auditLogService = service.NewAuditLogService(
		f.auditLogRepository,
		f.config.Audit.Workers,
		f.config.Audit.QueueSize,
		f.logger,
	)

	f.userService = service.NewUserService(f.userRepository, auth.NewBcryptHasher(), f.auditLogService, f.logger)

	baseCatalog := service.NewCatalogService(f.productRepository, f.auditLogService, f.logger)
	if f.cache != nil {
		cacheManager := cache.NewCacheManager(f.cache, f.logger)
		f.catalogService = service.NewCachedCatalogService(baseCatalog, f.cache, cacheManager, f.logger)
	} else {
		f.catalogService = baseCatalog
	}

	f.orderService = service.NewOrderService(
		f.orderRepository,
		f.productRepository,
		f.userRepository,
		f.auditLogService,
		f.logger,
	)

	f.paymentService = service.NewPaymentService(
		f.paymentRepository,
		f.orderRepository,
		f.orderService,
		service.RandomGateway(f.config.Payment.SuccessRate),
		f.auditLogService,
		f.logger,
	)

	f.reviewService = service.NewReviewService(
		f.reviewRepository,
		f.productRepository,
		f.auditLogService,
		f.logger,
	)
}

func (f *AppFactory) Shutdown() {
	f.auditLogService.Shutdown()
}

func (f *AppFactory) GetLogger() logger.Logger {
	return f.logger
}

func (f *AppFactory) GetConfig() *config.Config {
	return f.config
}

func (f *AppFactory) GetCache() cache.Cache {
	return f.cache
}

func (f *AppFactory) GetUserRepository() domain.UserRepository {
	return f.userRepository
}

func (f *AppFactory) GetProductRepository() domain.ProductRepository {
	return f.productRepository
}

func (f *AppFactory) GetOrderRepository() domain.OrderRepository {
	return f.orderRepository
}

func (f *AppFactory) GetReviewRepository() domain.ReviewRepository {
	return f.reviewRepository
}

func (f *AppFactory) GetPaymentRepository() domain.PaymentRepository {
	return f.paymentRepository
}

func (f *AppFactory) GetAuditLogRepository() domain.AuditLogRepository {
	return f.auditLogRepository
}

func (f *AppFactory) GetUserService() domain.UserService {
	return f.userService
}

func (f *AppFactory) GetCatalogService() domain.CatalogService {
	return f.catalogService
}

func (f *AppFactory) GetOrderService() domain.OrderService {
	return f.orderService
}

func (f *AppFactory) GetPaymentService() domain.PaymentService {
	return f.paymentService
}

func (f *AppFactory) GetReviewService() domain.ReviewService {
	return f.reviewService
}

func (f *AppFactory) GetAuditLogService() domain.AuditLogService {
	return f.auditLogService
}
