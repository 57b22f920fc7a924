package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jonathan/resume-studio/internal/cache"
	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/metrics"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/parsing"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/studio"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// resolveConfig loads --config (if given), applies flags that were set explicitly,
// fills defaults and finally the environment.
func resolveConfig(cmd *cobra.Command, g *globalFlags, flags config.Config) (config.Config, error) {
	var cfg config.Config
	if g.configPath != "" {
		loaded, err := config.LoadConfig(g.configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
		if g.verbose {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Loaded config from: %s\n", g.configPath)
		}
	}

	if changed(cmd, "job") {
		cfg.Job = flags.Job
	}
	if changed(cmd, "out") {
		cfg.Out = flags.Out
	}
	if changed(cmd, "template") {
		cfg.Template = flags.Template
	}
	if changed(cmd, "port") {
		cfg.Port = flags.Port
	}
	if changed(cmd, "db-url") {
		cfg.DatabaseURL = g.databaseURL
	}
	if changed(cmd, "redis-url") {
		cfg.RedisURL = g.redisURL
	}
	if changed(cmd, "verbose") {
		cfg.Verbose = g.verbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{Port: config.DefaultPort})
	cfg.FromEnv()
	return cfg, nil
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// loadJob reads the job document named by cfg.Job.
func loadJob(cmd *cobra.Command, cfg config.Config) (*types.Job, error) {
	if cfg.Job == "" {
		return nil, fmt.Errorf("--job is required")
	}
	return parsing.LoadJobFile(cfg.Job, cmd.ErrOrStderr())
}

// writeJSON writes v to cfg.Out, or to stdout when no output file is set. Files are
// checked against schemaRelPath when the schema can be found.
func writeJSON(cmd *cobra.Command, out string, v any, schemaRelPath string) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if out == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return err
	}

	if err := writeFile(out, jsonBytes); err != nil {
		return err
	}

	if schemaPath := schemas.ResolveSchemaPath(schemaRelPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, out); err != nil {
			var validationErr *schemas.ValidationError
			var schemaLoadErr *schemas.SchemaLoadError
			switch {
			case errors.As(err, &validationErr):
				return fmt.Errorf("generated JSON does not validate against schema: %w", err)
			case errors.As(err, &schemaLoadErr):
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
			default:
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not validate output against schema: %v\n", err)
			}
		}
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", out)
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// printer returns a Printer for verbose output, or nil when verbose is off.
func printer(w io.Writer, cfg config.Config) *observability.Printer {
	if !cfg.Verbose {
		return nil
	}
	return observability.NewPrinter(w)
}

// backend is a studio.Service over PostgreSQL, with the Redis report cache when
// configured.
type backend struct {
	studio *studio.Service
	db     *db.DB
	redis  *redis.Client
}

func openBackend(ctx context.Context, cfg config.Config) (*backend, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set and --db-url not provided")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	b := &backend{db: database}
	var reports cache.ReportCache
	if cfg.RedisURL != "" {
		redisCache, client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		reports, b.redis = redisCache, client
	}

	b.studio = studio.NewService(database, reports, metrics.NewRecorder(prometheus.NewRegistry()))
	return b, nil
}

func (b *backend) Close() {
	if b.redis != nil {
		_ = b.redis.Close()
	}
	b.db.Close()
}

func parseJobID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, fmt.Errorf("--job-id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid job-id: %w", err)
	}
	return id, nil
}
