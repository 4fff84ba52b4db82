// Package bootstrap wires runtime dependencies for command entry points.
package bootstrap

import (
	"fmt"

	"skip2love/internal/cache"
	"skip2love/internal/config"
	"skip2love/internal/database"
	"skip2love/internal/observability"
	"skip2love/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
}

// InitRuntime connects to the database and Redis, starts tracing when
// enabled, and optionally seeds demo data. The Redis client may be nil;
// the application degrades gracefully without it.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if cfg.TracingEnabled {
		if _, err := observability.InitTracing(observability.TracingConfig{
			ServiceName:    "skip2love-api",
			ServiceVersion: "1.0.0",
			Environment:    cfg.Env,
			Enabled:        true,
			Exporter:       cfg.TraceExporter,
			OTLPEndpoint:   cfg.OTLPEndpoint,
			SamplerRatio:   1.0,
		}); err != nil {
			return nil, nil, fmt.Errorf("tracing initialization failed: %w", err)
		}
	}

	if opts.SeedDemoData {
		if err := seed.Seed(db, seed.DefaultOptions()); err != nil {
			return nil, nil, fmt.Errorf("demo data seeding failed: %w", err)
		}
	}

	return db, r, nil
}
