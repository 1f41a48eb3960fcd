// Package convert translates debug-printed txpool dumps into canonical JSON.
//
// Two dump shapes are recognized: the full-transaction dump produced by
// `txpool_content` and the per-address nonce summary produced by
// `txpool_inspect`. Both are non-JSON textual renderings in which every
// nested value is tagged with its type or variant name; the translators in
// this package strip those tags and produce a plain JSON value.
package convert

import (
	"strings"
)

// Marker literals identifying the two supported dump shapes.
const (
	contentMarker = "TxpoolContent"
	inspectMarker = "TxpoolInspect"
)

// Format is a recognized txpool dump shape.
type Format int

const (
	// FormatContent is the full-transaction dump.
	FormatContent Format = iota
	// FormatInspect is the per-address nonce summary dump.
	FormatInspect
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatContent:
		return "content"
	case FormatInspect:
		return "inspect"
	default:
		return "unknown"
	}
}

// DetectFormat selects the translation pipeline for the raw dump text.
//
// The Content marker is checked first. If neither marker literal is present,
// ErrUnrecognizedFormat is returned.
func DetectFormat(raw string) (Format, error) {
	switch {
	case strings.Contains(raw, contentMarker):
		return FormatContent, nil
	case strings.Contains(raw, inspectMarker):
		return FormatInspect, nil
	default:
		return 0, ErrUnrecognizedFormat
	}
}

// Translate converts a raw dump into its JSON value.
//
// The reporter receives translation telemetry (byte counts, per-pattern match
// counts, timings); delivery is fire-and-forget and never affects the result.
// On a Content-path JSON syntax failure the returned error is a *SyntaxError
// carrying the fully rewritten text for offline diagnosis.
func Translate(raw string, reporter Reporter) (interface{}, error) {
	reporter.InputBytes(len(raw))

	format, err := DetectFormat(raw)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatContent:
		return translateContent(raw, reporter)
	default:
		return translateInspect(raw), nil
	}
}
