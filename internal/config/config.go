package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string
	Server   ServerConfig
	Payment  PaymentConfig
	Audit    AuditConfig
	Redis    RedisConfig
	LogLevel string
}

type ServerConfig struct {
	Port    string
	Timeout time.Duration
}

type PaymentConfig struct {
	// SuccessRate varsayılan (rastgele) ödeme sağlayıcısının onay oranı, 0-1.
	SuccessRate float64
}

type AuditConfig struct {
	Workers   int
	QueueSize int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

func Load() (*Config, error) {
	// .env yoksa ortam değişkenleriyle devam edilir.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_TIMEOUT", "30s")
	viper.SetDefault("PAYMENT_SUCCESS_RATE", 0.9)
	viper.SetDefault("AUDIT_WORKERS", 2)
	viper.SetDefault("AUDIT_QUEUE_SIZE", 256)
	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)

	var cfg Config

	cfg.AppEnv = viper.GetString("APP_ENV")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	cfg.Server.Port = viper.GetString("SERVER_PORT")
	cfg.Server.Timeout = viper.GetDuration("SERVER_TIMEOUT")

	cfg.Payment.SuccessRate = viper.GetFloat64("PAYMENT_SUCCESS_RATE")
	if cfg.Payment.SuccessRate < 0 || cfg.Payment.SuccessRate > 1 {
		cfg.Payment.SuccessRate = 0.9
	}

	cfg.Audit.Workers = viper.GetInt("AUDIT_WORKERS")
	cfg.Audit.QueueSize = viper.GetInt("AUDIT_QUEUE_SIZE")

	cfg.Redis.Enabled = viper.GetBool("CACHE_ENABLED")
	cfg.Redis.Host = viper.GetString("REDIS_HOST")
	cfg.Redis.Port = viper.GetString("REDIS_PORT")
	cfg.Redis.Password = viper.GetString("REDIS_PASSWORD")
	cfg.Redis.DB = viper.GetInt("REDIS_DB")

	return &cfg, nil
}
