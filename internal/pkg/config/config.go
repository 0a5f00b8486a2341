package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreFile  = "file"
	StoreRedis = "redis"

	GuardMemory = "memory"
	GuardRedis  = "redis"
)

type (
	HTTPServer struct {
		Port             string        `envconfig:"PORT" default:"8090"`
		RequestTimeout   time.Duration `envconfig:"MIDDLEWARE_REQUEST_TIMEOUT" default:"20s"` // middleware timeout
		RateLimiterQPS   int           `envconfig:"MIDDLEWARE_RATE_LIMIT_QPS" default:"50"`   // rate limiter capacity
		RateLimiterBurst int           `envconfig:"MIDDLEWARE_RATE_LIMIT_BURST" default:"25"` // rate limiter refill per second
		PprofEnabled     bool          `envconfig:"PPROF_ENABLED" default:"false"`
		PprofPort        string        `envconfig:"PPROF_PORT"`
	}

	Backend struct {
		// BaseURL включает /api/v1, например http://localhost:8000/api/v1
		BaseURL              string        `envconfig:"BACKEND_BASE_URL" required:"true"`
		Timeout              time.Duration `envconfig:"BACKEND_TIMEOUT" default:"15s"`
		RetryMax             uint64        `envconfig:"BACKEND_RETRY_MAX" default:"3"`
		RetryInitialInterval time.Duration `envconfig:"BACKEND_RETRY_INITIAL_INTERVAL" default:"200ms"`
		RetryMaxInterval     time.Duration `envconfig:"BACKEND_RETRY_MAX_INTERVAL" default:"2s"`
	}

	Realtime struct {
		// Origin адрес, с которого открыта консоль. Пусто - берётся из BACKEND_BASE_URL.
		Origin                   string        `envconfig:"REALTIME_ORIGIN"`
		DevHost                  string        `envconfig:"REALTIME_DEV_HOST" default:"localhost:8000"`
		ReconnectMaxRetries      uint64        `envconfig:"REALTIME_RECONNECT_MAX_RETRIES" default:"10"`
		ReconnectInitialInterval time.Duration `envconfig:"REALTIME_RECONNECT_INITIAL_INTERVAL" default:"1s"`
		ReconnectMaxInterval     time.Duration `envconfig:"REALTIME_RECONNECT_MAX_INTERVAL" default:"30s"`
		PongWait                 time.Duration `envconfig:"REALTIME_PONG_WAIT" default:"60s"`
	}

	// Poll интервалы опроса страниц. 0 - только загрузка при монтировании и push.
	Poll struct {
		Dashboard          time.Duration `envconfig:"POLL_DASHBOARD" default:"0s"`
		Orders             time.Duration `envconfig:"POLL_ORDERS" default:"30s"`
		Drivers            time.Duration `envconfig:"POLL_DRIVERS" default:"15s"`
		Pools              time.Duration `envconfig:"POLL_POOLS" default:"30s"`
		Earnings           time.Duration `envconfig:"POLL_EARNINGS" default:"60s"`
		RestaurantPayments time.Duration `envconfig:"POLL_RESTAURANT_PAYMENTS" default:"60s"`
		Commission         time.Duration `envconfig:"POLL_COMMISSION" default:"0s"`
	}

	Livemap struct {
		StaleAfter    time.Duration `envconfig:"LIVEMAP_STALE_AFTER" default:"90s"`
		SweepInterval time.Duration `envconfig:"LIVEMAP_SWEEP_INTERVAL" default:"30s"`
	}

	Session struct {
		Store     string        `envconfig:"SESSION_STORE" default:"file"`
		TokenFile string        `envconfig:"SESSION_TOKEN_FILE" default:".khaogully/admin_token"`
		TokenTTL  time.Duration `envconfig:"SESSION_TOKEN_TTL" default:"0s"`
	}

	Redis struct {
		URL      string        `envconfig:"REDIS_URL"`
		Address  string        `envconfig:"REDIS_ADDR"`
		Password string        `envconfig:"REDIS_PASSWORD"`
		DB       int           `envconfig:"REDIS_DB" default:"0"`
		Timeout  time.Duration `envconfig:"REDIS_TIMEOUT" default:"5s"`
	}

	Payout struct {
		Guard    string        `envconfig:"PAYOUT_GUARD" default:"memory"`
		GuardTTL time.Duration `envconfig:"PAYOUT_GUARD_TTL" default:"2m"`
	}

	Log struct {
		Level string `envconfig:"LOG_LEVEL" default:"info"`
	}

	Config struct {
		Server   HTTPServer
		Backend  Backend
		Realtime Realtime
		Poll     Poll
		Livemap  Livemap
		Session  Session
		Redis    Redis
		Payout   Payout
		Log      Log
	}
)

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if cfg.Realtime.Origin == "" {
		cfg.Realtime.Origin = originOf(cfg.Backend.BaseURL)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &cfg, nil
}

// RedisRequired нужен ли redis хоть одному компоненту.
func (c *Config) RedisRequired() bool {
	return c.Session.Store == StoreRedis || c.Payout.Guard == GuardRedis
}

func originOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS must be positive")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST must be positive")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	u, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("BACKEND_BASE_URL %q must be an absolute http(s) URL", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout <= 0 {
		return errors.New("BACKEND_TIMEOUT must be positive")
	}

	if cfg.Realtime.Origin == "" {
		return errors.New("REALTIME_ORIGIN is required when BACKEND_BASE_URL has no host")
	}
	if cfg.Realtime.ReconnectMaxRetries == 0 {
		return errors.New("REALTIME_RECONNECT_MAX_RETRIES must be positive")
	}

	if cfg.Livemap.StaleAfter <= 0 || cfg.Livemap.SweepInterval <= 0 {
		return errors.New("LIVEMAP_STALE_AFTER and LIVEMAP_SWEEP_INTERVAL must be positive")
	}

	switch cfg.Session.Store {
	case StoreFile:
		if strings.TrimSpace(cfg.Session.TokenFile) == "" {
			return errors.New("SESSION_TOKEN_FILE is required for the file session store")
		}
	case StoreRedis:
	default:
		return fmt.Errorf("SESSION_STORE %q: must be file or redis", cfg.Session.Store)
	}

	switch cfg.Payout.Guard {
	case GuardMemory, GuardRedis:
	default:
		return fmt.Errorf("PAYOUT_GUARD %q: must be memory or redis", cfg.Payout.Guard)
	}
	if cfg.Payout.GuardTTL <= 0 {
		return errors.New("PAYOUT_GUARD_TTL must be positive")
	}

	if cfg.RedisRequired() && cfg.Redis.URL == "" && cfg.Redis.Address == "" {
		return errors.New("REDIS_URL or REDIS_ADDR is required when redis is used")
	}

	return nil
}
