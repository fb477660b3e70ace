package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "giftshop"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Storefront   StorefrontConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Storefront.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GIFTSHOP_APP_ENV" required:"true"`
	Port         string `envconfig:"GIFTSHOP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"GIFTSHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GIFTSHOP_LOG_WARN_STACK" default:"false"`

	CORSOrigins []string `envconfig:"GIFTSHOP_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GIFTSHOP_DB_DSN"`
	Driver string `envconfig:"GIFTSHOP_DB_DRIVER" default:"postgres"`

	MaxOpenConns    int           `envconfig:"GIFTSHOP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GIFTSHOP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GIFTSHOP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GIFTSHOP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) validate() error {
	if db.DSN == "" {
		return fmt.Errorf("GIFTSHOP_DB_DSN is required")
	}
	switch db.Driver {
	case "postgres", "sqlite":
		return nil
	default:
		return fmt.Errorf("unsupported db driver %q", db.Driver)
	}
}

type RedisConfig struct {
	URL          string        `envconfig:"GIFTSHOP_REDIS_URL"`
	Address      string        `envconfig:"GIFTSHOP_REDIS_ADDR"`
	Password     string        `envconfig:"GIFTSHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"GIFTSHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GIFTSHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GIFTSHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GIFTSHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GIFTSHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GIFTSHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// StorefrontConfig carries the seasonal-store runtime knobs: branding, the
// order-number policies, and the two UX-level access gates. The allow-list and
// admin password are configuration, not authentication (they mirror what the
// storefront shows or hides client-side).
type StorefrontConfig struct {
	Brand            string   `envconfig:"GIFTSHOP_BRAND" default:"Stryker"`
	ExportBrandSlug  string   `envconfig:"GIFTSHOP_EXPORT_BRAND_SLUG" default:"stryker"`
	NumberPolicy     string   `envconfig:"GIFTSHOP_ORDER_NUMBER_POLICY" default:"sequential"`
	RandomPrefix     string   `envconfig:"GIFTSHOP_ORDER_NUMBER_RANDOM_PREFIX" default:"STRYKER"`
	SequentialPrefix string   `envconfig:"GIFTSHOP_ORDER_NUMBER_SEQ_PREFIX" default:"syk"`
	DefaultCountry   string   `envconfig:"GIFTSHOP_SHIPPING_DEFAULT_COUNTRY" default:"USA"`
	AllowedEmails    []string `envconfig:"GIFTSHOP_ALLOWED_EMAILS"`
	AdminEmail       string   `envconfig:"GIFTSHOP_ADMIN_EMAIL"`
	AdminPassword    string   `envconfig:"GIFTSHOP_ADMIN_PASSWORD" required:"true"`

	WizardTTL time.Duration `envconfig:"GIFTSHOP_WIZARD_TTL" default:"24h"`
}

func (s StorefrontConfig) validate() error {
	switch s.NumberPolicy {
	case "sequential", "random":
	default:
		return fmt.Errorf("unsupported order number policy %q", s.NumberPolicy)
	}
	if strings.TrimSpace(s.AdminPassword) == "" {
		return fmt.Errorf("GIFTSHOP_ADMIN_PASSWORD is required")
	}
	return nil
}

// EmailAllowed reports whether the normalized email may place an order. An
// empty allow-list admits everyone, matching the storefront's initial-setup
// behavior.
func (s StorefrontConfig) EmailAllowed(email string) bool {
	if len(s.AllowedEmails) == 0 {
		return true
	}
	normalized := strings.ToLower(strings.TrimSpace(email))
	for _, allowed := range s.AllowedEmails {
		if strings.ToLower(strings.TrimSpace(allowed)) == normalized {
			return true
		}
	}
	return false
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"GIFTSHOP_AUTO_MIGRATE" default:"false"`
}
