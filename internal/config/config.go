package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"
	DefaultSerpAPIURL   = "https://serpapi.com"
	// Client label sent to the geocoding service.
	DefaultUserAgent = "geo_locator"
)

// Config holds the runtime settings shared by the binaries.
type Config struct {
	Env      string `validate:"omitempty,oneof=development production"`
	LogLevel string `validate:"omitempty,oneof=trace debug info warn error"`

	SerpAPIKey string `validate:"required"`
	SerpAPIURL string `validate:"required,url"`

	NominatimURL string `validate:"required,url"`
	UserAgent    string `validate:"required"`

	DatabaseURL string
	Port        string `validate:"required,numeric"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadDotEnv loads a .env file from the working directory if there is one.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found (using environment variables)")
	}
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment and validates it.
// A missing SERPAPI_API_KEY fails here, before any request is sent.
func Load() (*Config, error) {
	cfg := &Config{
		Env:          Get("APP_ENV", "development"),
		LogLevel:     Get("LOG_LEVEL", "info"),
		SerpAPIKey:   Get("SERPAPI_API_KEY", ""),
		SerpAPIURL:   Get("SERPAPI_URL", DefaultSerpAPIURL),
		NominatimURL: Get("NOMINATIM_URL", DefaultNominatimURL),
		UserAgent:    Get("GEOCODER_USER_AGENT", DefaultUserAgent),
		DatabaseURL:  Get("DATABASE_URL", ""),
		Port:         Get("PORT", "8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}

var envNames = map[string]string{
	"Env":          "APP_ENV",
	"LogLevel":     "LOG_LEVEL",
	"SerpAPIKey":   "SERPAPI_API_KEY",
	"SerpAPIURL":   "SERPAPI_URL",
	"NominatimURL": "NOMINATIM_URL",
	"UserAgent":    "GEOCODER_USER_AGENT",
	"Port":         "PORT",
}

func describe(fe validator.FieldError) string {
	name, ok := envNames[fe.Field()]
	if !ok {
		name = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "url":
		return fmt.Sprintf("%s must be a URL, got %q", name, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", name, fe.Param(), fe.Value())
	case "numeric":
		return fmt.Sprintf("%s must be numeric, got %q", name, fe.Value())
	}
	return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
}
