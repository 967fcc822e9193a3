package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrConfigNotFound error if the main config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrUnknownProfile error if a requested profile is not configured.
	ErrUnknownProfile = errors.New("unknown profile")
)
