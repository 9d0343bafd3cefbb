package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "usgsquery version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "version:", Version)
			fmt.Fprintln(cmd.OutOrStdout(), "build time:", BuildTime)
		},
	}
}
