package usgs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/couchcryptid/usgs-quake-query/internal/domain"
	"github.com/couchcryptid/usgs-quake-query/internal/observability"
)

// maxErrorBody caps how much of a failed response body ends up in an error.
const maxErrorBody = 512

// Client implements domain.Fetcher against the USGS FDSN event service.
type Client struct {
	http    *resty.Client
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewClient creates an FDSN event service client. A zero timeout leaves the
// request bounded only by ctx.
func NewClient(timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	rc := resty.New().
		SetRetryCount(0).
		SetLogger(restyLogger{logger})
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}
	return &Client{http: rc, metrics: metrics, logger: logger}
}

// Fetch performs one GET of req.URL. The URL is sent as built; its query
// string is not re-encoded.
func (c *Client) Fetch(ctx context.Context, req domain.Request) (domain.Result, error) {
	start := time.Now()
	resp, err := c.http.R().SetContext(ctx).Get(req.URL)
	c.metrics.RequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		c.metrics.Requests.WithLabelValues("error").Inc()
		return domain.Result{}, &domain.NetworkError{URL: req.URL, Err: err}
	}

	if !resp.IsSuccess() {
		c.metrics.Requests.WithLabelValues("status").Inc()
		return domain.Result{}, &domain.NetworkError{
			URL:        req.URL,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("usgs API error: %s", truncate(resp.Body(), maxErrorBody)),
		}
	}

	body := resp.Body()
	c.metrics.Requests.WithLabelValues("success").Inc()
	c.metrics.ResponseBytes.Observe(float64(len(body)))
	c.logger.Debug("usgs response received", "status", resp.StatusCode(), "bytes", len(body), "duration", resp.Time())

	return domain.Result{
		Body:      body,
		Format:    req.Params.Format(),
		URL:       req.URL,
		FetchedAt: domain.Now(),
	}, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// restyLogger routes resty's internal warnings into slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.logger.Error(fmt.Sprintf(format, v...)) }
func (l restyLogger) Warnf(format string, v ...any)  { l.logger.Warn(fmt.Sprintf(format, v...)) }
func (l restyLogger) Debugf(format string, v ...any) { l.logger.Debug(fmt.Sprintf(format, v...)) }
