package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Env                string
	HTTPAddr           string
	CORSAllowedOrigins []string
	Parse              ParseConfig
	Logging            LoggingConfig
}

// ParseConfig bounds the parse API surface; the engine itself imposes no
// limits of its own.
type ParseConfig struct {
	MaxInputBytes int
	RateRPS       float64
	RateBurst     int
}

type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

func Load() (*Config, error) {
	maxInput, err := getenvInt("MAX_INPUT_BYTES", 2<<20)
	if err != nil {
		return nil, err
	}
	rateRPS, err := getenvFloat("PARSE_RATE_RPS", 2)
	if err != nil {
		return nil, err
	}
	rateBurst, err := getenvInt("PARSE_RATE_BURST", 5)
	if err != nil {
		return nil, err
	}
	if maxInput <= 0 {
		return nil, fmt.Errorf("MAX_INPUT_BYTES must be positive")
	}

	cfg := &Config{
		Env:                getenv("APP_ENV", "dev"),
		HTTPAddr:           getenv("HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: parseList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Parse: ParseConfig{
			MaxInputBytes: maxInput,
			RateRPS:       rateRPS,
			RateBurst:     rateBurst,
		},
		Logging: LoggingConfig{
			Level:  getenv("LOG_LEVEL", "info"),
			Format: getenv("LOG_FORMAT", "text"),
			File:   os.Getenv("LOG_FILE"),
		},
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return parsed, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", key, v)
	}
	return parsed, nil
}

func parseList(val string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
