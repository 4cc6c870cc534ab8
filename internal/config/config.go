package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Rates    RatesConfig
	Tax      TaxConfig
	Shipping ShippingConfig
	Pricing  PricingConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	GinMode     string        `env:"GIN_MODE" envDefault:"debug"`
	CORSOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
}

type DatabaseConfig struct {
	Enabled      bool   `env:"DB_ENABLED" envDefault:"true"`
	Host         string `env:"DB_HOST" envDefault:"localhost"`
	Port         string `env:"DB_PORT" envDefault:"5432"`
	User         string `env:"DB_USER" envDefault:"postgres"`
	Password     string `env:"DB_PASSWORD" envDefault:"postgres"`
	Name         string `env:"DB_NAME" envDefault:"postgres"`
	SSLMode      string `env:"DB_SSLMODE" envDefault:"disable"`
	AutoMigrate  bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	LogSQL       bool   `env:"DB_LOG_SQL" envDefault:"false"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
}

type RedisConfig struct {
	Enabled   bool   `env:"REDIS_ENABLED" envDefault:"false"`
	Addr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB" envDefault:"0"`
	Namespace string `env:"REDIS_NAMESPACE" envDefault:"carimport"`
}

type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET"`
}

type RatesConfig struct {
	URL             string        `env:"RATES_URL"`
	Timeout         time.Duration `env:"RATES_TIMEOUT" envDefault:"5s"`
	CacheTTL        time.Duration `env:"RATES_CACHE_TTL" envDefault:"5m"`
	RefreshInterval time.Duration `env:"RATES_REFRESH_INTERVAL" envDefault:"5m"`
}

type TaxConfig struct {
	URL     string        `env:"TAX_SERVICE_URL"`
	Timeout time.Duration `env:"TAX_SERVICE_TIMEOUT" envDefault:"10s"`
}

type ShippingConfig struct {
	CacheTTL      time.Duration `env:"SHIPPING_CACHE_TTL" envDefault:"5m"`
	SeedDirectory bool          `env:"SHIPPING_SEED_DIRECTORY" envDefault:"false"`
}

type PricingConfig struct {
	InsuranceRateRaw string `env:"INSURANCE_RATE" envDefault:"0.01"`

	insuranceRate decimal.Decimal
}

// InsuranceRate is the cargo insurance premium as a fraction of the price.
func (p PricingConfig) InsuranceRate() decimal.Decimal {
	return p.insuranceRate
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configs/.env and .env when present, then the process
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")
	_ = godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	rate, err := decimal.NewFromString(config.Pricing.InsuranceRateRaw)
	if err != nil {
		return nil, fmt.Errorf("parse INSURANCE_RATE: %w", err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, errors.New("INSURANCE_RATE must be between 0 and 1")
	}
	config.Pricing.insuranceRate = rate

	if config.Server.GinMode == "release" && config.Auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required in release mode")
	}

	return config, nil
}

// JWTSecret returns the signing secret, with a development fallback outside
// release mode.
func (c *Config) JWTSecret() []byte {
	if c.Auth.JWTSecret == "" {
		return []byte("default_super_secret_key")
	}
	return []byte(c.Auth.JWTSecret)
}

// DSN builds a postgres URL with the credentials escaped.
func (d DatabaseConfig) DSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return dsn.String()
}
