// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/seograde/internal/domain/analyze"
	"github.com/okian/seograde/internal/domain/catalog"
	"github.com/okian/seograde/internal/domain/model"
	"github.com/okian/seograde/internal/domain/types"
	"github.com/okian/seograde/pkg/logger"
	"github.com/okian/seograde/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Service implements the API dependencies for the scoring system.
type Service struct {
	mu sync.RWMutex

	// Core components
	analyzer *analyze.Analyzer
	cache    *resultCache

	// Configuration
	densityMin       float64
	densityMax       float64
	introWindow      int
	cacheSize        int
	batchConcurrency int

	// State
	started        bool
	scoresComputed atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDensityBand sets the keyword density band, in percent.
func WithDensityBand(min, max float64) Option {
	return func(s *Service) {
		if min > 0 && max > min {
			s.densityMin = min
			s.densityMax = max
		}
	}
}

// WithIntroWindow sets how many leading words count as the introduction.
func WithIntroWindow(words int) Option {
	return func(s *Service) {
		if words > 0 {
			s.introWindow = words
		}
	}
}

// WithCacheSize bounds the score cache. Zero disables the bound;
// negative values are ignored.
func WithCacheSize(size int) Option {
	return func(s *Service) {
		if size >= 0 {
			s.cacheSize = size
		}
	}
}

// WithBatchConcurrency bounds how many drafts of a batch are scored
// concurrently.
func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchConcurrency = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		densityMin:       catalog.DefaultDensityMin,
		densityMax:       catalog.DefaultDensityMax,
		introWindow:      catalog.DefaultIntroWindow,
		cacheSize:        1024,
		batchConcurrency: runtime.NumCPU(),
		logger:           nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting scoring service...")

	// The catalog is static; validating it here turns a bad edit into
	// a startup failure instead of a scoring anomaly.
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("check catalog: %w", err)
	}

	s.analyzer = analyze.New(
		analyze.WithDensityBand(s.densityMin, s.densityMax),
		analyze.WithIntroWindow(s.introWindow),
	)
	s.cache = newResultCache(s.cacheSize)

	s.started = true
	s.logger.Info(ctx, "scoring service started",
		logger.Float64("densityMin", s.densityMin),
		logger.Float64("densityMax", s.densityMax),
		logger.Int("introWindowWords", s.introWindow),
		logger.Int("cacheSize", s.cacheSize),
		logger.Int("batchConcurrency", s.batchConcurrency),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping scoring service...")

	s.started = false
	s.logger.Info(context.Background(), "scoring service stopped",
		logger.Int("scoresComputed", int(s.scoresComputed.Load())),
	)
}

// Score evaluates one draft, serving identical drafts from the cache.
func (s *Service) Score(ctx context.Context, in model.Input) (model.SEOScore, error) {
	s.mu.RLock()
	started, analyzer, cache := s.started, s.analyzer, s.cache
	s.mu.RUnlock()

	if !started {
		return model.SEOScore{}, ErrNotStarted
	}

	key := cacheKey(in)
	if score, ok := cache.get(key); ok {
		metrics.RecordCacheHit()
		s.logger.Debug(ctx, "score served from cache",
			logger.String("key", key[:12]),
		)
		return score, nil
	}
	metrics.RecordCacheMiss()

	start := time.Now()
	score := analyzer.Analyze(in)
	elapsed := time.Since(start)

	s.scoresComputed.Add(1)
	metrics.RecordAnalyzeDuration(float64(elapsed.Nanoseconds()) / 1e6)
	metrics.RecordScore(string(score.Grade))
	for _, c := range score.Checks {
		if c.Status != types.StatusPass {
			metrics.RecordCheckFlagged(string(c.Category), c.ID, string(c.Status))
		}
	}

	cache.put(key, score)
	metrics.UpdateCacheSize(cache.size())

	s.logger.Debug(ctx, "draft scored",
		logger.Int("overall", score.Overall),
		logger.String("grade", string(score.Grade)),
		logger.Int("checks", len(score.Checks)),
		logger.Duration("elapsed", elapsed),
	)

	return score, nil
}

// ScoreBatch evaluates drafts concurrently, bounded by the configured
// batch concurrency. Results keep the order of the input; the first
// failure cancels the remaining work.
func (s *Service) ScoreBatch(ctx context.Context, drafts []model.Input) ([]model.SEOScore, error) {
	s.mu.RLock()
	started, limit := s.started, s.batchConcurrency
	s.mu.RUnlock()

	if !started {
		return nil, ErrNotStarted
	}

	metrics.RecordBatchSize(len(drafts))

	results := make([]model.SEOScore, len(drafts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range drafts {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			score, err := s.Score(gctx, drafts[i])
			if err != nil {
				return err
			}
			results[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":          s.started,
		"densityMin":       s.densityMin,
		"densityMax":       s.densityMax,
		"introWindowWords": s.introWindow,
		"cacheSize":        s.cacheSize,
		"batchConcurrency": s.batchConcurrency,
	}

	if s.started {
		stats["scoresComputed"] = s.scoresComputed.Load()
		stats["cacheEntries"] = s.cache.size()
		stats["cacheHits"] = s.cache.hits()
		stats["cacheMisses"] = s.cache.misses()

		// Update metrics
		metrics.UpdateCacheSize(s.cache.size())
	}

	return stats
}

// cacheKey derives a stable digest for a draft. Input is plain data;
// marshaling cannot fail and field order is fixed by the struct.
func cacheKey(in model.Input) string {
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
