// Package generate serves random strings over http.
package generate

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/thiagodp/better-randstr/internal/config"
	accesslog "github.com/thiagodp/better-randstr/internal/logger/adapter/fiber"
	"github.com/thiagodp/better-randstr/internal/metrics"
	"github.com/thiagodp/better-randstr/internal/preset"
	"github.com/thiagodp/better-randstr/internal/web/handler"
	"github.com/thiagodp/better-randstr/randstr"
	"github.com/thiagodp/better-randstr/randstr/source"
)

const (
	// Path is the generation endpoint below handler.APIPath.
	Path = "/randstr"

	// PresetsPath lists the profiles and named callbacks below handler.APIPath.
	PresetsPath = "/presets"
)

// ErrTooLong is returned when a request asks for more characters than Webserver.MaxLength.
var ErrTooLong = errors.New("requested length exceeds the configured maximum")

// ErrTooMany is returned when a request asks for more values than Webserver.MaxCount.
var ErrTooMany = errors.New("requested count exceeds the configured maximum")

// Request holds the query parameters of a generation.
type Request struct {
	Length      string `query:"length"`
	Chars       string `query:"chars" validate:"excluded_with=Range"`
	Range       string `query:"range"`
	Accept      string `query:"accept"`
	Exclude     string `query:"exclude"`
	Replacer    string `query:"replacer"`
	Control     bool   `query:"control"`
	Count       int    `query:"count" validate:"gte=0"`
	Profile     string `query:"profile"`
	MaxAttempts int    `query:"maxAttempts" validate:"gte=0"`
}

// Spec returns the request options as a preset.Spec.
func (r *Request) Spec() preset.Spec {
	spec := preset.Spec{
		Length:              preset.ParseBounds(r.Length),
		Accept:              preset.ParseList(r.Accept),
		Exclude:             r.Exclude,
		Replacer:            r.Replacer,
		IncludeControlChars: r.Control,
		MaxAttempts:         r.MaxAttempts,
	}

	switch {
	case r.Chars != "":
		spec.Chars = r.Chars
	case r.Range != "":
		spec.Chars = preset.ParseBounds(r.Range)
	}

	return spec
}

// Response is the body of a successful generation.
type Response struct {
	Success bool     `json:"success"`
	Profile string   `json:"profile,omitempty"`
	Values  []string `json:"values"`
}

// PresetsResponse is the body of PresetsPath.
type PresetsResponse struct {
	Profiles  map[string]preset.Spec `json:"profiles"`
	Accept    []string               `json:"accept"`
	Replacers []string               `json:"replacers"`
}

// Service is the generate handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	collector *metrics.Collector
	random    randstr.RandomFunc
	validator handler.XValidator
}

// Init initializes the generate handler. collector may be nil.
func (s *Service) Init(router fiber.Router, cfg *config.Config, collector *metrics.Collector) error {
	if router == nil || cfg == nil {
		return errors.New(handler.ErrNilRouterCfgMsg)
	}

	random, err := source.New(source.Kind(cfg.Generator.Source), cfg.Generator.Seed)
	if err != nil {
		return err //nolint:wrapcheck
	}

	s.cfg = cfg
	s.collector = collector
	s.random = random

	router.Get(Path, s.Get)
	router.Get(PresetsPath, s.Presets)

	return nil
}

// Get handles a generation request.
func (s *Service) Get(c *fiber.Ctx) error {
	req := new(Request)

	if err := c.QueryParser(req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, err)
	}

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(handler.GlobalErrorHandlerResp{ //nolint:wrapcheck
			Success: false,
			Message: handler.Message(errs),
			Errors:  errs,
		})
	}

	count := req.Count
	if count == 0 {
		count = 1
	}

	if s.cfg.Webserver.MaxCount > 0 && count > s.cfg.Webserver.MaxCount {
		return handler.Fail(c, fiber.StatusBadRequest, fmt.Errorf("%w: %d > %d", ErrTooMany, count, s.cfg.Webserver.MaxCount))
	}

	spec := req.Spec()

	if req.Profile != "" {
		base, err := s.cfg.Spec(req.Profile)
		if err != nil {
			return handler.Fail(c, fiber.StatusNotFound, err)
		}

		spec = base.Merge(spec)

		c.Locals(accesslog.LocalProfile, req.Profile)
	}

	// requests and profiles may lower the configured cap, never raise it.
	if limit := s.cfg.Generator.MaxAttempts; limit > 0 && (spec.MaxAttempts == 0 || spec.MaxAttempts > limit) {
		spec.MaxAttempts = limit
	}

	gen, err := s.normalize(spec)
	if err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, err)
	}

	values := make([]string, 0, count)

	for range count {
		value, stats, err := gen.GenerateStats()
		if err != nil {
			s.fail(err, stats)
			log.Warn().Err(err).Int("attempts", stats.Rejected.Total()).Msg("generation failed")

			return handler.Fail(c, fiber.StatusUnprocessableEntity, err)
		}

		if s.collector != nil {
			s.collector.Observe(stats)
		}

		values = append(values, value)
	}

	c.Locals(accesslog.LocalGenerated, len(values))

	return c.JSON(Response{ //nolint:wrapcheck
		Success: true,
		Profile: req.Profile,
		Values:  values,
	})
}

// normalize resolves spec into a generation config within the configured limits.
func (s *Service) normalize(spec preset.Spec) (*randstr.Config, error) {
	raw, err := spec.Raw(s.random)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	gen, err := randstr.NormalizeRaw(raw)
	if err != nil {
		s.fail(err, randstr.Stats{})
		return nil, err //nolint:wrapcheck
	}

	if s.cfg.Webserver.MaxLength > 0 && gen.To > s.cfg.Webserver.MaxLength {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLong, gen.To, s.cfg.Webserver.MaxLength)
	}

	return gen, nil
}

func (s *Service) fail(err error, stats randstr.Stats) {
	if s.collector != nil {
		s.collector.Fail(err, stats)
	}
}

// Presets lists the configured profiles and the known callback names.
func (s *Service) Presets(c *fiber.Ctx) error {
	return c.JSON(PresetsResponse{ //nolint:wrapcheck
		Profiles:  s.cfg.Profile,
		Accept:    preset.AcceptableNames(),
		Replacers: preset.ReplacerNames(),
	})
}
