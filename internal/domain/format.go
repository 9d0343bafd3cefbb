package domain

import (
	"fmt"
	"strings"
	"time"
)

const filenameStamp = "2006-01-02_1504"

// Output formats offered by the service.
const (
	FormatQuakeML = "quakeml"
	FormatCSV     = "csv"
	FormatGeoJSON = "geojson"
	FormatKML     = "kml"
	FormatXML     = "xml"
	FormatText    = "text"
)

// Persists reports whether results in format are written to disk rather than
// returned in memory.
func Persists(format string) bool {
	return format == FormatCSV || format == FormatText
}

// DefaultFilename names a persisted result when the caller gives no filename,
// e.g. "usgsQuery_2013-11-20_1432.csv". The timestamp is in local time.
func DefaultFilename(now time.Time, format string) string {
	return fmt.Sprintf("usgsQuery_%s.%s", now.Local().Format(filenameStamp), format)
}

// NamedFilename is DefaultFilename with a query name worked in, e.g.
// "usgsQuery_sf_2013-11-20_1432.csv". Runes other than letters, digits, '-'
// and '_' in name become '_'.
func NamedFilename(name string, now time.Time, format string) string {
	if name == "" {
		return DefaultFilename(now, format)
	}
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	return fmt.Sprintf("usgsQuery_%s_%s.%s", safe, now.Local().Format(filenameStamp), format)
}
