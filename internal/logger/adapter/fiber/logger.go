// Package fiber provides a zerolog access log middleware for the randstr http service.
package fiber

import (
	"io"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/thiagodp/better-randstr/internal/logger"
)

const (
	// LocalProfile is the ctx.Locals key a handler sets to the profile it served.
	LocalProfile = "randstr.profile"

	// LocalGenerated is the ctx.Locals key a handler sets to the number of values it generated.
	LocalGenerated = "randstr.generated"

	// LocalElapsed holds the request duration in seconds once the chain returned.
	LocalElapsed = "elapsed"
)

// Config implements fiber middleware struct.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	//
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Config of the logger.
	Config logger.Log

	// CacheControlError max-age caching on chain errors.
	CacheControlError string

	// SkipURIs are not logged when Config.DisableCheckAlive is set.
	SkipURIs []string

	// Output receives the access log in addition to the configured console and file.
	//
	// Optional. Default: nil
	Output io.Writer
}

// ConfigDefault is the default config for fiber.
var ConfigDefault = Config{ //nolint:gochecknoglobals
	Next:              nil,
	CacheControlError: "max-age=0",
}

func configDefault(config ...Config) Config {
	if len(config) < 1 {
		return ConfigDefault
	}

	cfg := config[0]

	if cfg.CacheControlError == "" {
		cfg.CacheControlError = ConfigDefault.CacheControlError
	}

	return cfg
}

// writers collects the access log outputs of cfg.
func writers(cfg *Config) []io.Writer {
	var out []io.Writer

	if cfg.Output != nil {
		out = append(out, cfg.Output)
	}

	if cfg.Config.File.Enabled {
		if w := newRollingAccessFile(&cfg.Config); w != nil {
			out = append(out, w)
		}
	}

	// if Console Log is general enabled and the access log is routed to it.
	if cfg.Config.Console.Enabled && cfg.Config.EnableAccessLogToConsole {
		var console io.Writer = os.Stdout
		if cfg.Config.Console.Stderr {
			console = os.Stderr
		}

		if cfg.Config.Console.UseConsoleWriter {
			console = zerolog.ConsoleWriter{
				Out:          console,
				TimeFormat:   zerolog.TimeFieldFormat,
				PartsExclude: []string{"level"},
			}
		}

		out = append(out, console)
	}

	return out
}

// New creates a new fiber access logging middleware using zerolog.
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)

	skip := make(map[string]struct{}, len(cfg.SkipURIs))
	for _, uri := range cfg.SkipURIs {
		skip[uri] = struct{}{}
	}

	out := writers(&cfg)
	accessLogger := zerolog.Nop()

	if len(out) > 0 {
		accessLogger = zerolog.New(zerolog.MultiLevelWriter(out...)).
			With().
			Timestamp().
			Str("app", cfg.Config.AppName).
			Logger()
	}

	return func(ctx *fiber.Ctx) error {
		// Don't execute middleware if Next returns true
		if cfg.Next != nil && cfg.Next(ctx) {
			return ctx.Next()
		}

		start := time.Now()

		// Handle request, store err for logging
		chainErr := ctx.Next()
		if chainErr != nil {
			if errH := ctx.App().ErrorHandler(ctx, chainErr); errH != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError) //nolint:errcheck // ok here
			}

			ctx.Response().Header.Set(fiber.HeaderCacheControl, cfg.CacheControlError)
		}

		elapsed := time.Since(start).Seconds()
		ctx.Locals(LocalElapsed, elapsed)
		ctx.Response().Header.Set("X-Performance", strconv.FormatFloat(elapsed, 'f', 6, 64))

		if _, ok := skip[ctx.Path()]; ok && cfg.Config.DisableCheckAlive {
			return nil
		}

		// fiber normalizes the path, the query string is appended unchanged.
		uri := ctx.Path()
		if qs := ctx.Request().URI().QueryString(); len(qs) > 0 {
			uri += "?" + string(qs)
		}

		event := accessLogger.Log().
			Str("IP", ctx.IP()).
			Int("status", ctx.Response().StatusCode()).
			Float64("X-Performance", elapsed).
			Str("URI", uri).
			Str("method", ctx.Method()).
			Bytes("host", ctx.Request().Host()).
			Str(fiber.HeaderXForwardedFor, ctx.Get(fiber.HeaderXForwardedFor)).
			Str(fiber.HeaderUserAgent, ctx.Get(fiber.HeaderUserAgent))

		if profile, ok := ctx.Locals(LocalProfile).(string); ok && profile != "" {
			event.Str("profile", profile)
		}

		if generated, ok := ctx.Locals(LocalGenerated).(int); ok {
			event.Int("generated", generated)
		}

		if chainErr != nil {
			event.Err(chainErr)
		}

		event.Send()

		return nil
	}
}

// newRollingAccessFile uses lumberjack to create file based access log.
func newRollingAccessFile(cfg *logger.Log) io.Writer {
	if cfg.File.Path != "" {
		if err := os.MkdirAll(cfg.File.Path, 0o750); err != nil {
			log.Error().Err(err).Str("path", cfg.File.Path).Msg("can't create log directory")

			return nil
		}
	}

	return &lumberjack.Logger{
		Filename:   path.Join(cfg.File.Path, cfg.File.AccessLog),
		MaxSize:    cfg.File.AccessMaxSize,
		MaxAge:     cfg.File.AccessMaxAge,
		MaxBackups: cfg.File.AccessMaxBackups,
	}
}
