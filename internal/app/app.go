// Package app builds the dependencies shared by the server and the CLI.
package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"memo-manager/config"
	"memo-manager/internal/memo/repository"
	"memo-manager/internal/memo/repository/local"
	"memo-manager/internal/memo/repository/remote"
	"memo-manager/pkg/localstore"
	"memo-manager/pkg/log"
	"memo-manager/pkg/metrics"
)

// Deps holds the repositories every delivery works against.
type Deps struct {
	Storage  localstore.Storage
	Remote   repository.RemoteRepository
	Fallback repository.FallbackRepository
	Registry *prometheus.Registry
}

// NewLogger initialises the zap backed logger from config.
func NewLogger(cfg config.LoggerConfig) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Level,
		Mode:         cfg.Mode,
		Encoding:     cfg.Encoding,
		ColorEnabled: cfg.ColorEnabled,
	})
}

// Build opens the fallback storage and creates both repositories.
// Close releases the storage.
func Build(cfg *config.Config, l log.Logger) (*Deps, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	storage, err := localstore.Open(localstore.Options{
		Driver: cfg.Fallback.Driver,
		Path:   cfg.Fallback.Path,
	})
	if err != nil {
		return nil, err
	}

	client := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.AccessToken,
		remote.WithRateLimit(cfg.Remote.RateLimitPerSec, cfg.Remote.Burst),
	)

	return &Deps{
		Storage:  storage,
		Remote:   remote.New(client, m, l),
		Fallback: local.New(storage, cfg.Fallback.Slot, m, l),
		Registry: reg,
	}, nil
}

func (d *Deps) Close() error {
	return d.Storage.Close()
}
