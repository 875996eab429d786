package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port        string   `yaml:"port"`
	LogLevel    string   `yaml:"log_level"`
	CORSOrigins []string `yaml:"cors_allowed_origins"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	DBName          string        `yaml:"dbname"`
	SSLMode         string        `yaml:"sslmode"`
	MaxConns        int32         `yaml:"max_conns"`
	MinConns        int32         `yaml:"min_conns"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"`
	MigrationsPath  string        `yaml:"migrations_path"`
}

// Enabled reports whether a database is configured at all. Without one the
// catalog is served from the fallback list.
func (c PostgresConfig) Enabled() bool {
	return c.Host != ""
}

type StorefrontConfig struct {
	OrderNumber      string        `yaml:"order_whatsapp_number"`
	OperatorNumber   string        `yaml:"operator_whatsapp_number"`
	OrderLinkBase    string        `yaml:"order_link_base"`
	ShareLinkBase    string        `yaml:"share_link_base"`
	NotifyDelay      time.Duration `yaml:"notify_delay"`
	CustomBasePrice  float64       `yaml:"custom_base_price"`
	CatalogCacheFile string        `yaml:"catalog_cache_file"`
	SessionCacheSize int           `yaml:"session_cache_size"`
}

type AdminConfig struct {
	Password string `yaml:"password"`
}

type Config struct {
	App        AppConfig        `yaml:"app"`
	Postgres   PostgresConfig   `yaml:"postgres"`
	Storefront StorefrontConfig `yaml:"storefront"`
	Admin      AdminConfig      `yaml:"admin"`
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Port:     "8080",
			LogLevel: "info",
			CORSOrigins: []string{
				"http://localhost:5174",
				"http://localhost:5175",
				"http://localhost:5176",
				"http://localhost:3000",
			},
		},
		Postgres: PostgresConfig{
			Port:            "5432",
			SSLMode:         "disable",
			MaxConns:        10,
			MinConns:        2,
			MaxConnLifetime: 30 * time.Minute,
			MigrationsPath:  "migrations",
		},
		Storefront: StorefrontConfig{
			OrderNumber:      "919876543210",
			OperatorNumber:   "917007597203",
			OrderLinkBase:    "https://wa.me",
			ShareLinkBase:    "https://api.whatsapp.com",
			NotifyDelay:      500 * time.Millisecond,
			CustomBasePrice:  1999,
			SessionCacheSize: 1024,
		},
		Admin: AdminConfig{
			Password: "slm1234",
		},
	}
}

// NewConfig loads .env (if present), then the optional YAML file named by
// CONFIG_FILE, then environment variables. Later sources win.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadYAML(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(c); err != nil {
		return fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	setString(&c.App.Port, "APP_PORT")
	setString(&c.App.LogLevel, "LOG_LEVEL")
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.App.CORSOrigins = splitList(v)
	}

	setString(&c.Postgres.Host, "DB_HOST")
	setString(&c.Postgres.Port, "DB_PORT")
	setString(&c.Postgres.User, "DB_USER")
	setString(&c.Postgres.Password, "DB_PASSWORD")
	setString(&c.Postgres.DBName, "DB_NAME")
	setString(&c.Postgres.SSLMode, "DB_SSLMODE")
	setString(&c.Postgres.MigrationsPath, "MIGRATIONS_PATH")
	if err := setInt32(&c.Postgres.MaxConns, "DB_MAX_CONNS"); err != nil {
		return err
	}
	if err := setInt32(&c.Postgres.MinConns, "DB_MIN_CONNS"); err != nil {
		return err
	}
	if err := setDuration(&c.Postgres.MaxConnLifetime, "DB_MAX_CONN_LIFETIME"); err != nil {
		return err
	}

	setString(&c.Storefront.OrderNumber, "ORDER_WHATSAPP_NUMBER")
	setString(&c.Storefront.OperatorNumber, "OPERATOR_WHATSAPP_NUMBER")
	setString(&c.Storefront.OrderLinkBase, "ORDER_LINK_BASE")
	setString(&c.Storefront.ShareLinkBase, "SHARE_LINK_BASE")
	setString(&c.Storefront.CatalogCacheFile, "CATALOG_CACHE_FILE")
	if err := setDuration(&c.Storefront.NotifyDelay, "NOTIFY_DELAY"); err != nil {
		return err
	}
	if v := os.Getenv("CUSTOM_BASE_PRICE"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("CUSTOM_BASE_PRICE: %w", err)
		}
		c.Storefront.CustomBasePrice = price
	}
	if v := os.Getenv("SESSION_CACHE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SESSION_CACHE_SIZE: %w", err)
		}
		c.Storefront.SessionCacheSize = size
	}

	setString(&c.Admin.Password, "ADMIN_PASSWORD")
	return nil
}

func (c *Config) validate() error {
	if c.Postgres.Enabled() {
		if c.Postgres.User == "" {
			return errors.New("DB_USER is required when DB_HOST is set")
		}
		if c.Postgres.DBName == "" {
			return errors.New("DB_NAME is required when DB_HOST is set")
		}
	}
	if c.Storefront.SessionCacheSize <= 0 {
		return fmt.Errorf("session cache size must be positive, got %d", c.Storefront.SessionCacheSize)
	}
	if c.Storefront.CustomBasePrice <= 0 {
		return fmt.Errorf("custom base price must be positive, got %v", c.Storefront.CustomBasePrice)
	}
	if c.Admin.Password == "" {
		return errors.New("ADMIN_PASSWORD cannot be empty")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt32(dst *int32, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = int32(n)
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
