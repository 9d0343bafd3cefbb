// Package domain models queries against the USGS FDSN event web service.
//
// # Data Source
//
// Earthquake catalog queries go to the FDSN event service, version 1, at
// http://comcat.cr.usgs.gov/fdsnws/event/1/query. Parameter names and their
// accepted values are defined upstream (https://earthquake.usgs.gov/fdsnws/event/1/);
// this package only knows the names, never the value semantics.
//
// # Parameter Vocabulary
//
// The recognized names are grouped the way the upstream documentation groups them:
//
//	time:        starttime, endtime, updateafter
//	rectangle:   minlatitude, maxlatitude, minlongitude, maxlongitude
//	circle:      latitude, longitude, minradius, minradiuskm, maxradius, maxradiuskm
//	other:       mindepth, maxdepth, minmagnitude, maxmagnitude, includeallorigins,
//	             includeallmagnitudes, includearrivals, includedelete, eventid,
//	             limit, offset, orderby, catalog, contributor
//	extensions:  format, eventtype, reviewstatus, minmmi, maxmmi, mincdi, maxcdi,
//	             minfelt, alertlevel, mingap, maxgap, maxsig, producttype
//
// Any other key is rejected with a [ParameterError] before a request is built.
//
// # Encoding
//
// Values are form-encoded (space becomes "+") except that "+" and ":" are left
// literal: ISO timestamps carry ":" and the service accepts "+" as the
// date/time separator ("2013-01-01+00:00:00"). Keys are emitted in vocabulary
// order and empty values are omitted.
//
// # Output Formats
//
//	quakeml | csv | geojson | kml | xml | text
//
// csv and text results are persisted to disk; every other format, including an
// unset format (the service defaults to quakeml), is returned in memory.
// Generated filenames look like "usgsQuery_2013-11-20_1432.csv", stamped with
// local time from the package clock (see [SetClock]).
package domain
