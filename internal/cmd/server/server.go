// Package server wires configuration, backend selection, and the HTTP API
// into a runnable tracker server.
package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/tfc.fitness/internal/api"
	"github.com/louisbranch/tfc.fitness/internal/platform/config"
	"github.com/louisbranch/tfc.fitness/internal/storage/selector"
	"github.com/louisbranch/tfc.fitness/internal/tracker"
)

// Config holds server command configuration.
type Config struct {
	Addr         string `env:"TFC_ADDR" envDefault:"localhost:8080"`
	DBPath       string `env:"TFC_DB_PATH" envDefault:"tracker.db"`
	FallbackPath string `env:"TFC_FALLBACK_PATH" envDefault:"tracker.json"`
	TokenSecret  string `env:"TFC_TOKEN_SECRET"`
}

// ParseConfig loads configuration from the environment, then lets flags
// override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.FallbackPath, "fallback-path", cfg.FallbackPath, "key-value fallback store path")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "HMAC secret for session tokens")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.TokenSecret == "" {
		return Config{}, fmt.Errorf("token secret is required (TFC_TOKEN_SECRET or -token-secret)")
	}
	return cfg, nil
}

// Run resolves the storage backend and serves the API until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	res, err := selector.Resolve(cfg.DBPath, cfg.FallbackPath)
	if err != nil {
		return fmt.Errorf("resolve storage: %w", err)
	}
	defer res.Store.Close()
	log.Printf("storage backend: %s", res.Backend)

	tokens, err := api.NewTokenIssuer([]byte(cfg.TokenSecret), nil)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.New(tracker.New(res.Store, nil), tokens).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
