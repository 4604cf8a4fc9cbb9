package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vportela/forja/internal/config"
	"github.com/vportela/forja/internal/querycache"
	"github.com/vportela/forja/internal/querycache/provider"
	"github.com/vportela/forja/internal/querycache/provider/ristretto"
	"github.com/vportela/forja/internal/querycache/provider/sqlite"
	"github.com/vportela/forja/internal/querycache/zaplog"
	"github.com/vportela/forja/internal/rpc"
	"github.com/vportela/forja/internal/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "forja",
	Short: "CLI fitness tracker: workouts, sessions, exercises and cycles against a remote backend",
}

func Execute() error {
	return rootCmd.Execute()
}

// newTracker builds the whole stack: validated config, mode-appropriate
// logger, cache provider, cache store, RPC client. Configuration problems
// abort here, before any command logic runs.
func newTracker() (*tracker.Tracker, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := newLogger(cfg.API.Mode)
	if err != nil {
		return nil, err
	}

	p, err := newProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing cache store: %w", err)
	}

	cache := querycache.New(p, querycache.WithLogger(zaplog.Logger{L: log.Named("querycache")}))
	client := rpc.New(cfg.API.URL, cfg.API.Key, log.Named("rpc"))

	return tracker.New(client, cache, log), nil
}

func newLogger(mode string) (*zap.Logger, error) {
	switch mode {
	case config.ModeProduction:
		return zap.NewProduction()
	case config.ModeTest:
		return zap.NewNop(), nil
	default:
		return zap.NewDevelopment()
	}
}

func newProvider(cfg *config.Config) (provider.Provider, error) {
	if cfg.Cache.Persistent {
		path, err := cfg.CachePath()
		if err != nil {
			return nil, err
		}
		return sqlite.New(path)
	}
	return ristretto.New(ristretto.DefaultConfig())
}
