package app

import (
	"github.com/spf13/cobra"

	"github.com/thiagodp/better-randstr/internal/daemon"
)

func newStartCmd(st *state) *cobra.Command {
	var devMode bool

	startCmd := &cobra.Command{
		Use:     "start",
		Aliases: []string{"serve"},
		Short:   "Start the randstr web service",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if devMode {
				st.cfg.DevMode = true
			}

			d, err := daemon.New(&st.cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return d.Start() //nolint:wrapcheck
		},
	}

	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	return startCmd
}
