package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/booknest/storefront/pkg/enums"
)

type Config struct {
	App      AppConfig
	Catalog  CatalogConfig
	Checkout CheckoutConfig
	Session  SessionConfig
	Metrics  MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Session.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BOOKNEST_APP_ENV" required:"true"`
	Port         string `envconfig:"BOOKNEST_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"BOOKNEST_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"BOOKNEST_LOG_FORMAT"`
	LogWarnStack bool   `envconfig:"BOOKNEST_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CatalogConfig points at optional YAML overrides for the embedded sample data.
type CatalogConfig struct {
	Path             string `envconfig:"BOOKNEST_CATALOG_PATH"`
	OrderHistoryPath string `envconfig:"BOOKNEST_ORDER_HISTORY_PATH"`
}

type CheckoutConfig struct {
	SettlementDelay time.Duration `envconfig:"BOOKNEST_CHECKOUT_SETTLEMENT_DELAY" default:"2s"`
	Currency        string        `envconfig:"BOOKNEST_CHECKOUT_CURRENCY" default:"USD"`
}

func (c CheckoutConfig) validate() error {
	if c.SettlementDelay < 0 {
		return fmt.Errorf("%s must not be negative", EnvSettlementDelay)
	}
	if _, err := enums.ParseCurrency(c.Currency); err != nil {
		return fmt.Errorf("%s: %w", EnvCheckoutCurrency, err)
	}
	return nil
}

// QuoteCurrency is the validated currency; Load has already rejected bad codes.
func (c CheckoutConfig) QuoteCurrency() enums.Currency {
	cur, err := enums.ParseCurrency(c.Currency)
	if err != nil {
		return enums.CurrencyUSD
	}
	return cur
}

type SessionConfig struct {
	IdleTTL     time.Duration `envconfig:"BOOKNEST_SESSION_IDLE_TTL" default:"30m"`
	MaxSessions int           `envconfig:"BOOKNEST_SESSION_MAX" default:"10000"`
}

func (s SessionConfig) validate() error {
	if s.IdleTTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvSessionIdleTTL)
	}
	if s.MaxSessions <= 0 {
		return fmt.Errorf("%s must be positive", EnvSessionMax)
	}
	return nil
}

type MetricsConfig struct {
	Enabled bool `envconfig:"BOOKNEST_METRICS_ENABLED" default:"true"`
}
