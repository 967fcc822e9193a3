package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thiagodp/better-randstr/internal/config"
)

func newConfigCmd(st *state) *cobra.Command {
	var asJSON bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dump := config.DumpConfig
			if asJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&st.cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err //nolint:wrapcheck
		},
	}

	configCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of TOML")

	return configCmd
}
