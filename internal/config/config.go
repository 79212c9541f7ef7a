// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults, then layer file/env on top.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error sentinels.
package config

import (
	"context"
	"fmt"
	"runtime"

	"github.com/okian/seograde/internal/domain/catalog"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxBodyBytes caps the size of a request body accepted by the API.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// BatchMaxItems caps the number of drafts in one batch request.
	BatchMaxItems int `koanf:"batch_max_items"`

	// BatchConcurrency bounds how many drafts of a batch are scored at once.
	BatchConcurrency int `koanf:"batch_concurrency"`

	// CacheSize bounds the score cache; zero disables the bound.
	CacheSize int `koanf:"cache_size"`

	// KeywordDensityMin and KeywordDensityMax define the density band, in percent.
	KeywordDensityMin float64 `koanf:"keyword_density_min"`
	KeywordDensityMax float64 `koanf:"keyword_density_max"`

	// IntroWindowWords sets how many leading words count as the introduction.
	IntroWindowWords int `koanf:"intro_window_words"`
}

// New creates a Config with defaults. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use
// and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		MaxBodyBytes:      1 << 20,
		BatchMaxItems:     50,
		BatchConcurrency:  runtime.NumCPU(),
		CacheSize:         1024,
		KeywordDensityMin: catalog.DefaultDensityMin,
		KeywordDensityMax: catalog.DefaultDensityMax,
		IntroWindowWords:  catalog.DefaultIntroWindow,
	}
}

// Validate reports the first invariant the configuration breaks. All
// returned errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max_body_bytes must be positive, got %d", ErrInvalidConfig, c.MaxBodyBytes)
	}
	if c.BatchMaxItems <= 0 {
		return fmt.Errorf("%w: batch_max_items must be positive, got %d", ErrInvalidConfig, c.BatchMaxItems)
	}
	if c.BatchConcurrency <= 0 {
		return fmt.Errorf("%w: batch_concurrency must be positive, got %d", ErrInvalidConfig, c.BatchConcurrency)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size must not be negative, got %d", ErrInvalidConfig, c.CacheSize)
	}
	if c.KeywordDensityMin <= 0 || c.KeywordDensityMax <= c.KeywordDensityMin {
		return fmt.Errorf("%w: keyword density band %.2f-%.2f is not an ascending positive range",
			ErrInvalidConfig, c.KeywordDensityMin, c.KeywordDensityMax)
	}
	if c.IntroWindowWords <= 0 {
		return fmt.Errorf("%w: intro_window_words must be positive, got %d", ErrInvalidConfig, c.IntroWindowWords)
	}
	return nil
}
