package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App        AppConfig
	Upstream   UpstreamConfig
	Restaurant RestaurantConfig
	Monitor    MonitorConfig
	Redis      RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MUNCHBAY_APP_ENV" required:"true"`
	Port         string `envconfig:"MUNCHBAY_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MUNCHBAY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MUNCHBAY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// UpstreamConfig points the gateway at the food-order platform API.
type UpstreamConfig struct {
	BaseURL        string        `envconfig:"MUNCHBAY_UPSTREAM_BASE_URL" required:"true"`
	Token          string        `envconfig:"MUNCHBAY_UPSTREAM_TOKEN"`
	RequestTimeout time.Duration `envconfig:"MUNCHBAY_UPSTREAM_REQUEST_TIMEOUT" default:"10s"`
}

// RestaurantConfig carries the vendor identity every upstream call is scoped to.
// An empty ID makes the monitor idle and order operations no-op, matching the
// console's behavior before onboarding completes.
type RestaurantConfig struct {
	ID string `envconfig:"MUNCHBAY_RESTAURANT_ID"`
}

type MonitorConfig struct {
	PollInterval time.Duration `envconfig:"MUNCHBAY_MONITOR_POLL_INTERVAL" default:"15s"`
	CycleTimeout time.Duration `envconfig:"MUNCHBAY_MONITOR_CYCLE_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MUNCHBAY_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MUNCHBAY_REDIS_ADDR"`
	Password     string        `envconfig:"MUNCHBAY_REDIS_PASSWORD"`
	DB           int           `envconfig:"MUNCHBAY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MUNCHBAY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MUNCHBAY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MUNCHBAY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MUNCHBAY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MUNCHBAY_REDIS_WRITE_TIMEOUT" default:"5s"`
}
