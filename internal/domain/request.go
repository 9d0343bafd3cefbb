package domain

import (
	"context"
	"time"
)

// DefaultBaseURL is the FDSN event service query endpoint.
const DefaultBaseURL = "http://comcat.cr.usgs.gov/fdsnws/event/1/query"

// Request is a single encoded query. It owns a private copy of its params.
type Request struct {
	Params Params
	URL    string
}

// NewRequest encodes params onto baseURL. The params are copied, so later
// changes by the caller do not leak into the request.
func NewRequest(baseURL string, params Params) Request {
	p := params.Clone()
	u := baseURL
	if q := p.Encode(); q != "" {
		u += "?" + q
	}
	return Request{Params: p, URL: u}
}

// Result is the raw response to a Request. Body is opaque; it is never parsed.
type Result struct {
	Body      []byte
	Format    string
	URL       string
	FetchedAt time.Time
}

// Fetcher performs the HTTP GET for a Request.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (Result, error)
}
