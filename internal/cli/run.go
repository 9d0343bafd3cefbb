package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/usgs-quake-query/internal/domain"
	"github.com/couchcryptid/usgs-quake-query/internal/query"
)

// queryFile is the layout of a batch file:
//
//	queries:
//	  - name: sf
//	    filename: usgsQuery_SF_83-12.csv
//	    params:
//	      starttime: "1983-01-01"
//	      format: csv
type queryFile struct {
	Queries []queryEntry `mapstructure:"queries"`
}

type queryEntry struct {
	Name     string `mapstructure:"name"`
	Filename string `mapstructure:"filename"`
}

// viper folds every key to lower case, which would let "Format" pass as
// "format". Params are therefore decoded a second time with keys as written.
type yamlParams struct {
	Queries []struct {
		Params map[string]string `yaml:"params"`
	} `yaml:"queries"`
}

type anyParams struct {
	Queries []struct {
		Params map[string]any `json:"params" toml:"params"`
	} `json:"queries" toml:"queries"`
}

func newRunCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a batch of named queries from a file, in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			queries, err := loadQueries(file)
			if err != nil {
				return err
			}
			if err := a.init(); err != nil {
				return err
			}

			now := domain.Now()
			for i := range queries {
				queries[i].Params = domain.ResolveTimes(queries[i].Params, now)
			}

			outs, err := a.client.Run(cmd.Context(), queries)
			for i, out := range outs {
				if out.Written() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", queries[i].Name, out.Path)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d bytes (%s)\n", queries[i].Name, len(out.Result.Body), out.Result.Format)
				}
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "queries.yaml", "batch file (yaml, json or toml)")
	return cmd
}

func loadQueries(path string) ([]query.NamedQuery, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read query file: %w", err)
	}

	var qf queryFile
	if err := v.Unmarshal(&qf); err != nil {
		return nil, fmt.Errorf("decode query file: %w", err)
	}
	if len(qf.Queries) == 0 {
		return nil, fmt.Errorf("query file %s defines no queries", path)
	}

	params, err := loadParams(path)
	if err != nil {
		return nil, err
	}
	if len(params) != len(qf.Queries) {
		return nil, fmt.Errorf("query file %s: top-level keys must be lower case", path)
	}

	queries := make([]query.NamedQuery, 0, len(qf.Queries))
	for i, e := range qf.Queries {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("query-%d", i+1)
		}
		queries = append(queries, query.NamedQuery{
			Name:     name,
			Filename: e.Filename,
			Params:   domain.Params(params[i]),
		})
	}
	return queries, nil
}

// loadParams returns the params node of every query with key case preserved.
// YAML scalars are kept exactly as written.
func loadParams(path string) ([]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read query file: %w", err)
	}

	var doc anyParams
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		var ydoc yamlParams
		if err := yaml.Unmarshal(data, &ydoc); err != nil {
			return nil, fmt.Errorf("decode query params: %w", err)
		}
		out := make([]map[string]string, len(ydoc.Queries))
		for i, q := range ydoc.Queries {
			out[i] = q.Params
		}
		return out, nil
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported query file type %q: want yaml, json or toml", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode query params: %w", err)
	}

	out := make([]map[string]string, len(doc.Queries))
	for i, q := range doc.Queries {
		params := make(map[string]string, len(q.Params))
		for k, v := range q.Params {
			s, err := cast.ToStringE(v)
			if err != nil {
				return nil, fmt.Errorf("query %d: param %q: %w", i+1, k, err)
			}
			params[k] = s
		}
		out[i] = params
	}
	return out, nil
}
