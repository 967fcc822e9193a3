package config

import (
	"github.com/thiagodp/better-randstr/internal/logger"
	"github.com/thiagodp/better-randstr/internal/preset"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	Log       logger.Log
	Webserver Webserver
	Generator Generator

	// Profile holds named generation presets, selected with --profile or ?profile=.
	Profile map[string]preset.Spec `validate:"dive"`
}

// Webserver implement webserver settings.
type Webserver struct {
	Port          int    `validate:"gte=0,lte=65535"` // listening port for the webserver
	URL           string // base url for the webserver
	ShutDownTime  int    `validate:"gte=0"` // seconds to report not alive before stopping
	Metrics       bool   // serve /metrics
	CheckAliveURI string
	MaxLength     int `validate:"gte=0"` // largest length a request may ask for, 0 for no limit
	MaxCount      int `validate:"gte=0"` // largest number of values per request
}

// Generator holds the defaults of every generation.
type Generator struct {
	Source      string `validate:"omitempty,oneof=math crypto seeded"`
	Seed        uint64
	MaxAttempts int `validate:"gte=0"` // cap on rejected candidates, 0 for no cap
}
