package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/couchcryptid/usgs-quake-query/internal/domain"
	"github.com/couchcryptid/usgs-quake-query/internal/observability"
)

// Persister writes a raw result body to a path.
type Persister interface {
	Write(path string, body []byte) error
}

// Publisher forwards in-memory results to an external sink.
type Publisher interface {
	Publish(ctx context.Context, result domain.Result) error
}

// Outcome is what Execute resolved to: a file on disk or a result in memory.
type Outcome struct {
	Result domain.Result
	Path   string // set only when the result was persisted
}

// Written reports whether the result went to disk.
func (o Outcome) Written() bool {
	return o.Path != ""
}

// NamedQuery is one entry of a query batch.
type NamedQuery struct {
	Name     string
	Filename string
	Params   domain.Params
}

// Client validates, encodes, fetches and dispatches FDSN event queries.
// It holds no per-call state, so one Client can serve any number of calls.
type Client struct {
	baseURL   string
	outputDir string
	fetcher   domain.Fetcher
	persister Persister
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Client. Generated filenames are placed in outputDir.
func New(baseURL, outputDir string, f domain.Fetcher, p Persister, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL:   baseURL,
		outputDir: outputDir,
		fetcher:   f,
		persister: p,
		logger:    logger,
		metrics:   metrics,
	}
}

// WithPublisher returns a copy of c that also publishes in-memory results.
func (c *Client) WithPublisher(p Publisher) *Client {
	cp := *c
	cp.publisher = p
	return &cp
}

// Execute runs one query. csv and text results are written to filename, or
// to a generated name when filename is empty; other formats come back in
// memory. Unknown parameters fail with *domain.ParameterError before any I/O.
func (c *Client) Execute(ctx context.Context, params domain.Params, filename string) (Outcome, error) {
	if err := params.Validate(); err != nil {
		c.metrics.ParameterErrors.Inc()
		return Outcome{}, err
	}

	req := domain.NewRequest(c.baseURL, params)
	c.logger.Info("querying usgs", "url", req.URL)

	result, err := c.fetcher.Fetch(ctx, req)
	if err != nil {
		return Outcome{}, err
	}

	format := req.Params.Format()
	if domain.Persists(format) {
		return c.persist(result, format, filename)
	}

	c.logger.Info("result returned in memory", "format", format, "bytes", len(result.Body))
	out := Outcome{Result: result}

	if c.publisher != nil {
		if err := c.publisher.Publish(ctx, result); err != nil {
			return out, fmt.Errorf("publish result: %w", err)
		}
		c.metrics.ResultsPublished.Inc()
	}
	return out, nil
}

func (c *Client) persist(result domain.Result, format, filename string) (Outcome, error) {
	path := filename
	if path == "" {
		path = filepath.Join(c.outputDir, domain.DefaultFilename(domain.Now(), format))
	}

	c.logger.Info("writing result", "path", path, "bytes", len(result.Body))
	if err := c.persister.Write(path, result.Body); err != nil {
		c.metrics.FileWriteErrors.Inc()
		var ferr *domain.FileWriteError
		if !errors.As(err, &ferr) {
			err = &domain.FileWriteError{Path: path, Err: err}
		}
		return Outcome{}, err
	}

	c.metrics.FilesWritten.Inc()
	return Outcome{Result: result, Path: path}, nil
}

// Run executes queries in order and stops at the first failure. Outcomes of
// the queries that completed are returned alongside the error.
//
// Persisting queries without a filename are named after the query, so results
// in one batch never share a file. A batch where two persisting queries still
// resolve to the same path is rejected before any request is sent.
func (c *Client) Run(ctx context.Context, queries []NamedQuery) ([]Outcome, error) {
	planned, err := c.plan(queries)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(planned))
	for _, q := range planned {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		out, err := c.Execute(ctx, q.Params, q.Filename)
		if err != nil {
			return outcomes, fmt.Errorf("query %q: %w", q.Name, err)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

// plan fixes the output path of every persisting query up front. The input
// slice is left as is.
func (c *Client) plan(queries []NamedQuery) ([]NamedQuery, error) {
	now := domain.Now()
	planned := make([]NamedQuery, len(queries))
	owners := make(map[string]string, len(queries))

	for i, q := range queries {
		format := q.Params.Format()
		if domain.Persists(format) {
			if q.Filename == "" {
				q.Filename = filepath.Join(c.outputDir, domain.NamedFilename(q.Name, now, format))
			}
			path := filepath.Clean(q.Filename)
			if prev, ok := owners[path]; ok {
				return nil, fmt.Errorf("queries %q and %q both write to %s", prev, q.Name, q.Filename)
			}
			owners[path] = q.Name
		}
		planned[i] = q
	}
	return planned, nil
}
