package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DBUrl      string `mapstructure:"DATABASE_URL" validate:"required"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	JWTSecret    string        `mapstructure:"JWT_SECRET" validate:"required"`
	JWTExpiresIn time.Duration `mapstructure:"JWT_EXPIRES_IN" validate:"gt=0"`

	StorageURL           string `mapstructure:"STORAGE_URL" validate:"omitempty,url"`
	StorageKey           string `mapstructure:"STORAGE_KEY" validate:"required_with=StorageURL"`
	StorageSecret        string `mapstructure:"STORAGE_SECRET" validate:"required_with=StorageURL"`
	StorageBucket        string `mapstructure:"STORAGE_BUCKET" validate:"required"`
	StorageRegion        string `mapstructure:"STORAGE_REGION" validate:"required"`
	StorageSignedURLSecs int    `mapstructure:"STORAGE_SIGNED_URL_EXPIRY" validate:"gt=0"`
	UploadDir            string `mapstructure:"UPLOAD_DIR"`

	RedisURL string `mapstructure:"REDIS_URL"`

	ServerPort  string `mapstructure:"SERVER_PORT" validate:"required,numeric"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`
	Timezone    string `mapstructure:"APP_TIMEZONE" validate:"required"`
	LogLevel    string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	PurgeSchedule      string `mapstructure:"PURGE_SCHEDULE"`
	PurgeRetentionDays int    `mapstructure:"PURGE_RETENTION_DAYS" validate:"gte=0"`

	CheckEmailDomain bool `mapstructure:"CHECK_EMAIL_DOMAIN"`
}

var defaults = map[string]any{
	"DATABASE_URL":              "",
	"DB_HOST":                   "",
	"DB_PORT":                   "5432",
	"DB_USER":                   "",
	"DB_PASSWORD":               "",
	"DB_NAME":                   "",
	"JWT_SECRET":                "",
	"JWT_EXPIRES_IN":            "24h",
	"STORAGE_URL":               "",
	"STORAGE_KEY":               "",
	"STORAGE_SECRET":            "",
	"STORAGE_BUCKET":            "scheduleStorage",
	"STORAGE_REGION":            "us-east-1",
	"STORAGE_SIGNED_URL_EXPIRY": 3600,
	"UPLOAD_DIR":                "./uploads",
	"REDIS_URL":                 "",
	"SERVER_PORT":               "8080",
	"CORS_ORIGINS":              "",
	"APP_TIMEZONE":              "America/Sao_Paulo",
	"LOG_LEVEL":                 "info",
	"PURGE_SCHEDULE":            "@daily",
	"PURGE_RETENTION_DAYS":      30,
	"CHECK_EMAIL_DOMAIN":        false,
}

// Load reads the process environment (and a .env file when present) and
// validates the result. Callers are expected to exit when it fails.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.DBUrl == "" && cfg.DBHost != "" {
		cfg.DBUrl = cfg.composeDBUrl()
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) composeDBUrl() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%s", c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) SignedURLExpiry() time.Duration {
	return time.Duration(c.StorageSignedURLSecs) * time.Second
}

func (c *Config) PurgeRetention() time.Duration {
	return time.Duration(c.PurgeRetentionDays) * 24 * time.Hour
}

func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
