package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	RegisterCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the buzz version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "buzz version %s (built %s)\n", Version, BuildTime)
		},
	})
}
