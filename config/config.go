// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/ELQUIA-Mainnki/reception/pkg/logger"
	"github.com/ELQUIA-Mainnki/reception/pkg/mailer"
	"github.com/ELQUIA-Mainnki/reception/pkg/mailer/resend"
	"github.com/ELQUIA-Mainnki/reception/pkg/validator"
)

var (
	// ErrParse is returned when an environment variable cannot be converted.
	ErrParse = errors.New("config: failed to parse environment")

	// ErrInvalid is returned when required settings are missing or malformed.
	ErrInvalid = errors.New("config: invalid configuration")
)

// DefaultEnvFile is read by Load when no files are given and it exists.
const DefaultEnvFile = ".env"

// Config holds all settings of the reception service.
type Config struct {
	Address         string        `env:"ADDRESS" envDefault:":8080" validate:"required"`
	ToEmail         string        `env:"TO_EMAIL" validate:"required,email"`
	FormPath        string        `env:"FORM_PATH" envDefault:"/api/submit" validate:"required,startswith=/"`
	Strict          bool          `env:"FORM_STRICT" envDefault:"true"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	RequestTimeout  time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s" validate:"gt=0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	Mail   mailer.Config
	Resend resend.Config
	Log    logger.Config
}

// Load reads the given dotenv files (or .env when present), then parses
// and validates the process environment. Variables already set in the
// environment win over dotenv values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err == nil {
			files = []string{DefaultEnvFile}
		}
	}

	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to load env file: %w", err)
		}
	}

	return parse(env.Options{})
}

// FromMap parses and validates settings from an explicit variable map
// instead of the process environment.
func FromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, errors.Join(ErrInvalid, err)
	}

	return cfg, nil
}
