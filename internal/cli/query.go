package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/usgs-quake-query/internal/domain"
)

func newQueryCmd(a *app) *cobra.Command {
	var (
		pairs  []string
		output string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a single query",
		Example: `  usgsquery query -p starttime=2013-01-01 -p latitude=37.77 -p longitude=-122.44 \
    -p maxradiuskm=200 -p minmagnitude=2.5 -p format=geojson
  usgsquery query -p starttime=30years -p endtime=today -p format=csv -o quakes.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := parsePairs(pairs)
			if err != nil {
				return err
			}
			if err := a.init(); err != nil {
				return err
			}

			out, err := a.client.Execute(cmd.Context(), domain.ResolveTimes(params, domain.Now()), output)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringArrayVarP(&pairs, "param", "p", nil, "query parameter as name=value (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path for csv/text results (default usgsQuery_<time>.<format>)")
	return cmd
}

// parsePairs turns name=value flags into Params. Names are not checked here;
// the query client rejects unknown ones.
func parsePairs(pairs []string) (domain.Params, error) {
	params := make(domain.Params, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q: want name=value", p)
		}
		params[name] = value
	}
	return params, nil
}
