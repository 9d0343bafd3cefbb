package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/usgs-quake-query/internal/domain"
)

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List recognized query parameters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range domain.Vocabulary() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
