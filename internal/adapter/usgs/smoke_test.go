//go:build usgs

package usgs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/usgs-quake-query/internal/domain"
)

// These tests hit the live FDSN event service.
// Run with: go test -tags=usgs ./internal/adapter/usgs/ -v -count=1

func TestSmoke_GeoJSON(t *testing.T) {
	c, _ := testClient(30 * time.Second)

	req := domain.NewRequest(domain.DefaultBaseURL, domain.Params{
		"starttime":    "2013-01-01",
		"endtime":      "2013-01-08",
		"latitude":     "37.77",
		"longitude":    "-122.44",
		"maxradiuskm":  "200",
		"minmagnitude": "2.5",
		"format":       "geojson",
	})
	result, err := c.Fetch(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, string(result.Body), "FeatureCollection")
}

func TestSmoke_CSV(t *testing.T) {
	c, _ := testClient(30 * time.Second)

	req := domain.NewRequest(domain.DefaultBaseURL, domain.Params{
		"starttime":    "2013-01-01",
		"endtime":      "2013-01-08",
		"minmagnitude": "5",
		"format":       "csv",
	})
	result, err := c.Fetch(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(result.Body), "time,latitude,longitude"))
}
