// Package web serves the generator over http with fiber.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/thiagodp/better-randstr/internal/config"
	accesslog "github.com/thiagodp/better-randstr/internal/logger/adapter/fiber"
	"github.com/thiagodp/better-randstr/internal/metrics"
	"github.com/thiagodp/better-randstr/internal/web/handler"
	"github.com/thiagodp/better-randstr/internal/web/handler/generate"
)

// MetricsPath serves the prometheus metrics when Webserver.Metrics is set.
const MetricsPath = "/metrics"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Addr returns the listen address of the configured port.
func (s *Service) Addr() string {
	return ":" + strconv.Itoa(s.cfg.Webserver.Port)
}

// Alive reports whether the check alive route answers 200.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// Start starts the web service on the given address and blocks until it stops.
func (s *Service) Start(addr string) error {
	log.Info().Str("addr", addr).Str("url", s.cfg.Webserver.URL).Msg("starting http server")

	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and stops the service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Stop()
}

// Stop reports not alive for Webserver.ShutDownTime seconds, then stops the http server.
func (s *Service) Stop() {
	s.alive.Store(false)

	// Graceful shutdown for reverse proxies: checkalive returns 503 until the LB drops us.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// checkAlive answers 200 while the service is alive and 503 while it shuts down.
func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down") //nolint:wrapcheck
	}

	return c.SendString("OK") //nolint:wrapcheck
}

// errorHandler answers every unhandled error with a GlobalErrorHandlerResp.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	return handler.Fail(c, code, err)
}

// New creates a new web service with the given configuration. collector may be nil.
func New(cfg *config.Config, collector *metrics.Collector) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize:        8192, //nolint:mnd
			AppName:               cfg.Title,
			CaseSensitive:         true,
			Prefork:               false,
			Immutable:             true,
			DisableStartupMessage: !cfg.DevMode,
			ErrorHandler:          errorHandler,
		},
	)

	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.DevMode || cfg.Webserver.ShutDownTime == 0,
	}

	checkAliveURI := cfg.Webserver.CheckAliveURI
	if checkAliveURI == "" {
		checkAliveURI = config.Default().Webserver.CheckAliveURI
	}

	app.Use(recover.New())
	app.Use(accesslog.New(accesslog.Config{
		Config:   cfg.Log,
		SkipURIs: []string{checkAliveURI, MetricsPath},
	}))

	app.Get(checkAliveURI, service.checkAlive)

	if cfg.Webserver.Metrics && collector != nil {
		app.Get(MetricsPath, adaptor.HTTPHandler(collector.Handler()))
	}

	// init handlers, they register their own routes
	if err := new(generate.Service).Init(app.Group(handler.APIPath), cfg, collector); err != nil {
		return nil, err //nolint:wrapcheck
	}

	service.alive.Store(true)

	return service, nil
}
