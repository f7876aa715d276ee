// File: internal/urlstate/urlstate.go
// Brief: Serializes the wizard model into URL query parameters and back.

// Package urlstate is the serialization boundary between the wizard model and
// the browser address bar. Encode and Decode are near-inverses: any model
// produced by Decode re-encodes to the same query, so a shared or bookmarked
// URL reconstructs the session exactly.
//
// Decoding fails soft per field: a malformed value falls back to that field's
// default without disturbing the other fields, and unrecognized keys are
// ignored outright.
package urlstate

import (
	"net/url"

	"github.com/example/kickstart/internal/selection"
)

const (
	paramPage     = "page"
	paramDatabase = "primaryDatabase"
	paramLogging  = "loggingFramework"
	paramEditor   = "preferredEditor"
	paramFormat   = "dataFormat"
)

// Encode serializes the model into query parameters. Optional fields are
// omitted while unset; the format set encodes as a repeated parameter in the
// fixed enumeration order so equal models always encode identically.
func Encode(m selection.Model) url.Values {
	q := url.Values{}
	q.Set(paramPage, string(m.Page))
	if m.Database != selection.DatabaseUnset {
		q.Set(paramDatabase, string(m.Database))
	}
	if m.Logging != selection.LoggingUnset {
		q.Set(paramLogging, string(m.Logging))
	}
	if m.Editor != selection.EditorUnset {
		q.Set(paramEditor, string(m.Editor))
	}
	for _, f := range m.SelectedFormats() {
		q.Add(paramFormat, string(f))
	}
	return q
}

// Decode rebuilds a model from query parameters, starting from defaults.
// Each field is parsed independently; one bad parameter never corrupts the
// others.
func Decode(q url.Values, defaults selection.Model) selection.Model {
	m := defaults
	m.Formats = nil

	if page, ok := selection.ParsePage(q.Get(paramPage)); ok {
		m.Page = page
	}
	if db, ok := selection.ParseDatabase(q.Get(paramDatabase)); ok {
		m.Database = db
	}
	if lf, ok := selection.ParseLogFramework(q.Get(paramLogging)); ok {
		m.Logging = lf
	}
	if ed, ok := selection.ParseEditor(q.Get(paramEditor)); ok {
		m.Editor = ed
	}
	for _, raw := range q[paramFormat] {
		f, ok := selection.ParseDataFormat(raw)
		if !ok {
			continue
		}
		if !m.HasFormat(f) {
			m = m.ToggleFormat(f)
		}
	}
	return m
}

// EncodeQuery is Encode rendered as a raw query string, ready to append to a
// wizard URL.
func EncodeQuery(m selection.Model) string {
	return Encode(m).Encode()
}

// DecodeQuery parses a raw query string and decodes it. A string that does
// not parse at all yields the defaults unchanged.
func DecodeQuery(rawQuery string, defaults selection.Model) selection.Model {
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return defaults
	}
	return Decode(q, defaults)
}
