package domain

import (
	"net/url"
	"slices"
	"sort"
	"strings"
)

// vocabulary lists every query parameter the FDSN event service accepts, in
// the order they are encoded.
var vocabulary = [...]string{
	"starttime", "endtime", "updateafter",
	"minlatitude", "maxlatitude", "minlongitude", "maxlongitude",
	"latitude", "longitude", "minradius", "minradiuskm", "maxradius", "maxradiuskm",
	"mindepth", "maxdepth", "minmagnitude", "maxmagnitude",
	"includeallorigins", "includeallmagnitudes", "includearrivals", "includedelete",
	"eventid", "limit", "offset", "orderby", "catalog", "contributor",
	"format", "eventtype", "reviewstatus",
	"minmmi", "maxmmi", "mincdi", "maxcdi", "minfelt",
	"alertlevel", "mingap", "maxgap", "maxsig", "producttype",
}

// Vocabulary returns the recognized parameter names in encoding order.
// The returned slice is a copy.
func Vocabulary() []string {
	return slices.Clone(vocabulary[:])
}

// IsRecognized reports whether name is part of the parameter vocabulary.
func IsRecognized(name string) bool {
	return slices.Contains(vocabulary[:], name)
}

// Params is a caller-supplied set of query parameters.
type Params map[string]string

// Clone returns an independent copy of p.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Format returns the requested output format, or "" when unset.
func (p Params) Format() string {
	return p["format"]
}

// Validate returns a *ParameterError for the first unrecognized key. Keys are
// checked in sorted order so the reported name is deterministic.
func (p Params) Validate() error {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !IsRecognized(k) {
			return &ParameterError{Name: k}
		}
	}
	return nil
}

// Encode builds the query string. Keys follow vocabulary order, empty values
// are dropped, and "+" and ":" stay unescaped. Unrecognized keys are ignored;
// call Validate first.
func (p Params) Encode() string {
	var b strings.Builder
	for _, name := range vocabulary {
		v := p[name]
		if v == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(escapeValue(v))
	}
	return b.String()
}

var keepLiteral = strings.NewReplacer("%2B", "+", "%3A", ":")

func escapeValue(v string) string {
	return keepLiteral.Replace(url.QueryEscape(v))
}
