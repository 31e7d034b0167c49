package algebraic

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/vitalvas/numfield/domain"
	"github.com/vitalvas/numfield/expr"
	"github.com/vitalvas/numfield/numberfield"
)

var tracer = otel.Tracer("numfield.algebraic")

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "numfield_field_cache_hits_total",
		Help: "Number of field cache hits",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "numfield_field_cache_misses_total",
		Help: "Number of field cache misses",
	})

	cacheBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "numfield_field_cache_builds_total",
		Help: "Number of fields constructed by the cache",
	})

	cacheBuildErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "numfield_field_cache_build_errors_total",
		Help: "Number of failed field constructions",
	})

	cacheBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "numfield_field_cache_build_duration_seconds",
		Help:    "Time spent constructing a field",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})
)

// Cache memoizes fields by ground domain and generator list. Concurrent
// requests for the same missing field share a single construction. Cached
// fields are immutable and shared between callers.
type Cache struct {
	mu     sync.RWMutex
	fields map[string]*Field
	flight singleflight.Group

	cfg    numberfield.Config
	logger *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger used to report field construction.
func WithLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithConfig sets the configuration fields are built with.
func WithConfig(cfg numberfield.Config) CacheOption {
	return func(c *Cache) {
		c.cfg = cfg
	}
}

// NewCache returns an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		fields: make(map[string]*Field),
		cfg:    numberfield.DefaultConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the field generated over dom by exts, building it on first use.
// Failed constructions are not cached.
//
// A shared build is not canceled with the caller that started it: each caller
// stops waiting when its own ctx is done while the build goes on for the
// others.
func (c *Cache) Get(ctx context.Context, dom domain.Domain, exts ...expr.Expr) (*Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := cacheKey(dom, exts)

	c.mu.RLock()
	f, ok := c.fields[key]
	c.mu.RUnlock()
	if ok {
		cacheHits.Inc()
		return f, nil
	}
	cacheMisses.Inc()

	ch := c.flight.DoChan(key, func() (any, error) {
		return c.build(context.WithoutCancel(ctx), key, dom, exts)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Field), nil
	}
}

// Len returns the number of cached fields.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.fields)
}

func (c *Cache) build(ctx context.Context, key string, dom domain.Domain, exts []expr.Expr) (*Field, error) {
	c.mu.RLock()
	existing, ok := c.fields[key]
	c.mu.RUnlock()
	if ok {
		return existing, nil
	}

	gens := make([]string, len(exts))
	for i, e := range exts {
		gens[i] = e.String()
	}

	ctx, span := tracer.Start(ctx, "algebraic.Cache.Build",
		trace.WithAttributes(
			attribute.String("field.ground", domainName(dom)),
			attribute.StringSlice("field.generators", gens),
		),
	)
	defer span.End()

	start := time.Now()
	f, err := NewWithConfig(c.cfg, dom, exts...)
	elapsed := time.Since(start)
	cacheBuildDuration.Observe(elapsed.Seconds())

	if err != nil {
		cacheBuildErrors.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.WarnContext(ctx, "field construction failed",
			"generators", gens,
			"error", err,
		)
		return nil, err
	}

	cacheBuilds.Inc()
	span.SetAttributes(
		attribute.Int("field.degree", f.Degree()),
		attribute.String("field.key", f.Key()),
	)

	c.mu.Lock()
	c.fields[key] = f
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "field constructed",
		"field", f.Key(),
		"degree", f.Degree(),
		"duration", elapsed,
	)

	return f, nil
}

func cacheKey(dom domain.Domain, exts []expr.Expr) string {
	var sb strings.Builder
	sb.WriteString(domainName(dom))
	for _, e := range exts {
		sb.WriteByte(0)
		sb.WriteString(e.String())
	}
	return sb.String()
}

func domainName(dom domain.Domain) string {
	if dom == nil {
		return "<nil>"
	}
	return dom.String()
}
