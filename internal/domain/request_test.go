package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	p := sanFrancisco()
	req := NewRequest(DefaultBaseURL, p)

	assert.Equal(t, DefaultBaseURL+"?"+p.Encode(), req.URL)
	assert.Equal(t, p, req.Params)

	p["format"] = "csv"
	assert.Equal(t, "geojson", req.Params.Format(), "request must not share the caller's map")
}

func TestNewRequest_NoParams(t *testing.T) {
	req := NewRequest(DefaultBaseURL, Params{"endtime": ""})
	assert.Equal(t, DefaultBaseURL, req.URL)
}

func TestPersists(t *testing.T) {
	assert.True(t, Persists(FormatCSV))
	assert.True(t, Persists(FormatText))

	for _, f := range []string{FormatGeoJSON, FormatQuakeML, FormatKML, FormatXML, ""} {
		assert.False(t, Persists(f), f)
	}
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2013, time.November, 20, 14, 32, 59, 0, time.Local)
	assert.Equal(t, "usgsQuery_2013-11-20_1432.csv", DefaultFilename(now, FormatCSV))
	assert.Equal(t, "usgsQuery_2013-11-20_1432.text", DefaultFilename(now, FormatText))
}

func TestNamedFilename(t *testing.T) {
	now := time.Date(2013, time.November, 20, 14, 32, 59, 0, time.Local)
	assert.Equal(t, "usgsQuery_sf_2013-11-20_1432.csv", NamedFilename("sf", now, FormatCSV))
	assert.Equal(t, "usgsQuery_bay_area_1_2013-11-20_1432.text", NamedFilename("bay area/1", now, FormatText))
	assert.Equal(t, DefaultFilename(now, FormatCSV), NamedFilename("", now, FormatCSV))
}
