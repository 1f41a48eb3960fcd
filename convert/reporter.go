package convert

import "time"

// Reporter receives operational telemetry from the translators.
//
// All methods are fire-and-forget: the translators only guarantee that the
// reported values are computed, never that they are delivered anywhere.
type Reporter interface {
	// InputBytes reports the size of the raw dump.
	InputBytes(n int)
	// OutputBytes reports the size of the encoded JSON output.
	OutputBytes(n int)
	// WrapperMatch reports the number of occurrences of a wrapper token
	// erased by the Content pipeline.
	WrapperMatch(wrapper string, n int)
	// FieldMatch reports the number of occurrences of a field name quoted
	// by the Content pipeline.
	FieldMatch(field string, n int)
	// ParseDuration reports the time spent rewriting and parsing a dump.
	ParseDuration(d time.Duration)
	// ParseError reports the position of a JSON syntax error in the
	// rewritten Content text.
	ParseError(line, column int)
}

// NopReporter discards all telemetry.
type NopReporter struct{}

// InputBytes implements Reporter.
func (NopReporter) InputBytes(int) {}

// OutputBytes implements Reporter.
func (NopReporter) OutputBytes(int) {}

// WrapperMatch implements Reporter.
func (NopReporter) WrapperMatch(string, int) {}

// FieldMatch implements Reporter.
func (NopReporter) FieldMatch(string, int) {}

// ParseDuration implements Reporter.
func (NopReporter) ParseDuration(time.Duration) {}

// ParseError implements Reporter.
func (NopReporter) ParseError(int, int) {}
