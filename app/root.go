// Package app implements the main application commands.
package app

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thiagodp/better-randstr/internal/config"
	"github.com/thiagodp/better-randstr/internal/logger"
)

// state shared by the commands of one invocation.
type state struct {
	configPath string // directory holding main.toml
	cfg        config.Config
}

// NewRootCmd returns the randstr command tree.
func NewRootCmd() *cobra.Command {
	st := &state{}

	rootCmd := &cobra.Command{
		Use:   "randstr",
		Short: "randstr generates random strings",
		Long: `randstr generates random strings with a configurable length, character set,
acceptance predicate and per character replacement. It runs once from the
command line or serves the generator over http.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: st.load,
	}

	rootCmd.PersistentFlags().StringVar(&st.configPath, "config", config.DefaultPath, "directory holding main.toml")

	rootCmd.AddCommand(
		newGenerateCmd(st),
		newStartCmd(st),
		newConfigCmd(st),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute() //nolint:wrapcheck
}

// load reads the configuration and initializes the logger. A missing main.toml
// falls back to config.Default.
func (st *state) load(_ *cobra.Command, _ []string) error {
	cfg, err := config.ReadConfig(st.configPath)

	missing := errors.Is(err, config.ErrConfigNotFound)

	switch {
	case missing:
		cfg = config.Default()
	case err != nil:
		return err //nolint:wrapcheck
	}

	st.cfg = cfg

	if err = logger.Init(cfg.Log); err != nil {
		return errors.Wrap(err, "failed to init logger")
	}

	if missing {
		log.Debug().Str("path", st.configPath).Msg("no config file found, using defaults")
	}

	return nil
}
