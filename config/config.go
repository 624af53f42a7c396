package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	EnvDevelopment = "Development"
	EnvLocal       = "Local"
	EnvProduction  = "Production"
)

type Config struct {
	Env  string `env:"APP_ENV,default=Development"`
	Port string `env:"PORT,default=8080"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
	LogFile   string `env:"LOG_FILE"`

	DBDriver   string `env:"DB_DRIVER,default=postgres"`
	DBDSN      string `env:"DB_DSN"`
	DBHost     string `env:"DB_HOST,default=db"`
	DBPort     int    `env:"DB_PORT,default=5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`

	AllowedOrigins     string `env:"ALLOWED_ORIGINS,default=*"`
	RateLimitMax       int    `env:"RATE_LIMIT_MAX,default=60"`
	RateLimitWindowSec int    `env:"RATE_LIMIT_WINDOW_SECONDS,default=60"`
	BodyLimitMB        int    `env:"BODY_LIMIT_MB,default=4"`
}

// Load reads an optional .env file and decodes the environment into a
// Config. A missing .env is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Warning: .env file not found")
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Env {
	case EnvDevelopment, EnvLocal, EnvProduction:
	default:
		return fmt.Errorf("invalid APP_ENV %q", c.Env)
	}
	switch strings.ToLower(c.DBDriver) {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// DSN returns DB_DSN when set, otherwise a postgres DSN assembled from the
// DB_* parts.
func (c Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func (c Config) BodyLimitBytes() int {
	if c.BodyLimitMB <= 0 {
		return 4 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

func (c Config) IsLocal() bool {
	return c.Env == EnvLocal
}
