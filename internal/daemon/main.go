// Package daemon wires the randstr http service.
package daemon

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/thiagodp/better-randstr/internal/config"
	"github.com/thiagodp/better-randstr/internal/metrics"
	"github.com/thiagodp/better-randstr/internal/web"
)

// MetricsNamespace prefixes every metric the daemon exports.
const MetricsNamespace = "randstr"

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	collector  *metrics.Collector
}

// Start starts the Daemon's web service and stops it on SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(d.webService.Addr())
}

// Collector returns the metrics collector of the daemon.
func (d *Daemon) Collector() *metrics.Collector {
	return d.collector
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	collector := metrics.New(MetricsNamespace)

	webService, err := web.New(cfg, collector)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	log.Debug().
		Str("source", cfg.Generator.Source).
		Int("profiles", len(cfg.Profile)).
		Bool("metrics", cfg.Webserver.Metrics).
		Msg("daemon initialized")

	return &Daemon{
		webService: webService,
		collector:  collector,
	}, nil
}
