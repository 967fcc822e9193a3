// Package handler holds what the http handlers of the randstr service share.
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thiagodp/better-randstr/internal/config"
	"github.com/thiagodp/better-randstr/internal/metrics"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(router fiber.Router, cfg *config.Config, collector *metrics.Collector) error
}

// Fail writes a GlobalErrorHandlerResp with the given status.
func Fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(GlobalErrorHandlerResp{ //nolint:wrapcheck
		Success: false,
		Message: err.Error(),
	})
}
