package cli

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/usgs-quake-query/internal/adapter/disk"
	kafkaadapter "github.com/couchcryptid/usgs-quake-query/internal/adapter/kafka"
	"github.com/couchcryptid/usgs-quake-query/internal/adapter/usgs"
	"github.com/couchcryptid/usgs-quake-query/internal/config"
	"github.com/couchcryptid/usgs-quake-query/internal/observability"
	"github.com/couchcryptid/usgs-quake-query/internal/query"
)

var (
	Version   string
	BuildTime string
)

// app carries the wiring shared by subcommands. It is built lazily so that
// commands like "params" and "version" need no configuration.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	metrics   *observability.Metrics
	client    *query.Client
	publisher *kafkaadapter.Publisher
	fs        afero.Fs
}

func (a *app) init() error {
	if a.client != nil {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := observability.NewLogger(cfg)
	if a.metrics == nil {
		a.metrics = observability.NewMetrics()
	}
	if a.fs == nil {
		a.fs = afero.NewOsFs()
	}

	fetcher := usgs.NewClient(cfg.Timeout, a.metrics, logger)
	client := query.New(cfg.BaseURL, cfg.OutputDir, fetcher, disk.NewWriter(a.fs, logger), logger, a.metrics)

	if cfg.KafkaEnabled() {
		a.publisher = kafkaadapter.NewPublisher(cfg, logger)
		client = client.WithPublisher(a.publisher)
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	a.cfg, a.logger, a.client = cfg, logger, client
	return nil
}

func (a *app) close() {
	if a.cfg == nil {
		return
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error("kafka publisher close error", "error", err)
		}
	}
	if a.cfg.MetricsTextfile != "" {
		if err := observability.WriteTextfile(a.cfg.MetricsTextfile); err != nil {
			a.logger.Error("write metrics textfile", "path", a.cfg.MetricsTextfile, "error", err)
		}
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "usgsquery",
		Short: "Query the USGS earthquake catalog",
		Long: "usgsquery sends FDSN event queries to the USGS earthquake catalog. csv and text " +
			"results are saved to disk; every other format is printed to stdout.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newQueryCmd(a),
		newRunCmd(a),
		newParamsCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with process arguments. A .env file in the working
// directory is loaded first when present.
func Execute() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
	a := &app{}
	defer a.close()
	return newRootCmd(a).Execute()
}

func printResult(w io.Writer, out query.Outcome) error {
	if out.Written() {
		_, err := io.WriteString(w, out.Path+"\n")
		return err
	}
	_, err := w.Write(out.Result.Body)
	return err
}
