// Package config handles input from etc/main.toml.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/thiagodp/better-randstr/internal/logger"
	"github.com/thiagodp/better-randstr/internal/preset"
	"github.com/thiagodp/better-randstr/randstr"
)

const (
	// DefaultPath is the directory searched for main.toml when none is given.
	DefaultPath = "./etc/"

	// JSONEnv holds a JSON document merged over the file configuration.
	JSONEnv = "RANDSTR_CONFIG_JSON"

	mainFile = "main.toml"
)

var validate = validator.New() //nolint:gochecknoglobals

// ReadConfig from config file. Values missing from the file keep their Default.
func ReadConfig(path string) (Config, error) {
	var (
		c             = Default()
		JSONConfigEnv string
		err           error
	)

	if path == "" {
		path = DefaultPath
	}

	file := filepath.Join(path, mainFile)

	if _, err = os.Stat(file); errors.Is(err, os.ErrNotExist) {
		return Config{}, errors.Wrap(ErrConfigNotFound, file)
	}

	if _, err = toml.DecodeFile(file, &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(JSONEnv)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validateConfig(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+JSONEnv)
	}

	return c, nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Title: "better-randstr",
		Log: logger.Log{
			LogLevel:    "warn",
			AppName:     "randstr",
			ServiceName: "randstr",
			Console:     logger.Console{Enabled: true, UseConsoleWriter: true, Stderr: true},
		},
		Webserver: Webserver{
			Port:          8080, //nolint:mnd
			URL:           "http://localhost:8080",
			ShutDownTime:  5, //nolint:mnd
			Metrics:       true,
			CheckAliveURI: "/checkalive",
			MaxLength:     4096, //nolint:mnd
			MaxCount:      100,  //nolint:mnd
		},
		Generator: Generator{
			Source:      "math",
			MaxAttempts: 1_000_000, //nolint:mnd
		},
		Profile: map[string]preset.Spec{
			"password":   {Length: []any{12, 20}, Exclude: " "}, //nolint:mnd
			"pin":        {Length: 6, Chars: randstr.Numbers},   //nolint:mnd
			"identifier": {Length: 16, Chars: randstr.AlphaNumeric},
			"quoted":     {Length: 10, Replacer: "quotes"}, //nolint:mnd
		},
	}
}

// Spec returns the named profile.
func (c *Config) Spec(name string) (preset.Spec, error) {
	spec, ok := c.Profile[name]
	if !ok {
		return preset.Spec{}, errors.Wrapf(ErrUnknownProfile, "%q", name)
	}

	return spec, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint:wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint:wrapcheck
	}

	return buffer.String(), nil
}

// validateConfig checks the struct tags and the settings the web service needs.
func validateConfig(c *Config) error {
	invalidErrMessage := "invalid config"

	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	for name := range c.Profile {
		raw, err := c.Profile[name].Raw(nil)
		if err == nil {
			_, err = randstr.NormalizeRaw(raw)
		}

		if err != nil {
			return errors.Wrapf(err, "%s: profile %q", invalidErrMessage, name)
		}
	}

	return nil
}
