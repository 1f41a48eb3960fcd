package convert

import (
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strings"
	"time"
)

// pass is a single step of the Content rewrite pipeline. Each pass maps the
// output text of the previous pass to a new text; order is load-bearing.
type pass struct {
	name  string
	apply func(text string, reporter Reporter) string
}

// contentPasses returns the rewrite pipeline for Content dumps, in execution
// order.
func contentPasses() []pass {
	return []pass{
		{name: "erase_wrappers", apply: eraseWrappers},
		{name: "flatten_options", apply: flattenOptions},
		{name: "quote_fields", apply: quoteFields},
		{name: "map_create", apply: mapCreate},
		{name: "quote_hex", apply: quoteHex},
		{name: "strip_parens", apply: stripParens},
		{name: "strip_residual_tags", apply: stripResidualTags},
		{name: "strip_digit_separators", apply: stripDigitSeparators},
		{name: "normalize_trailing_commas", apply: normalizeTrailingCommas},
		{name: "fix_cross_line_commas", apply: fixCrossLineCommas},
	}
}

var (
	// Whitespace-tolerant variants of "Wrapper {", per wrapper token.
	wrapperSpacedRes = func() map[string]*regexp.Regexp {
		m := make(map[string]*regexp.Regexp, len(typeWrappers))
		for _, w := range typeWrappers {
			m[w] = regexp.MustCompile(regexp.QuoteMeta(w) + `\s*\{`)
		}
		return m
	}()

	// Word-boundary anchored "name:" patterns, per field name.
	fieldRes = func() map[string]*regexp.Regexp {
		m := make(map[string]*regexp.Regexp, len(fieldNames))
		for _, f := range fieldNames {
			m[f] = regexp.MustCompile(`\b` + regexp.QuoteMeta(f) + `\s*:`)
		}
		return m
	}()

	hexLiteralRe      = regexp.MustCompile(`\b0x([0-9a-fA-F]*)\b`)
	parenAfterColonRe = regexp.MustCompile(`:\s*\(`)
	inlineTagRe       = regexp.MustCompile(`[A-Z][a-zA-Z0-9]*\{`)
	danglingTagRe     = regexp.MustCompile(`:\s*[A-Z][a-zA-Z0-9]*\s*\n\s*\{`)
	groupedDigitsRe   = regexp.MustCompile(`:\s*(\d+)_`)

	braceCommaBraceRe   = regexp.MustCompile(`\},\s*\}`)
	bracketCommaBraceRe = regexp.MustCompile(`\],\s*\}`)
	braceCommaBracketRe = regexp.MustCompile(`\},\s*\]`)
	commaBraceRe        = regexp.MustCompile(`,\s*\}`)
	commaBracketRe      = regexp.MustCompile(`,\s*\]`)
	commaOnlyLineRe     = regexp.MustCompile(`\n\s*,\s*\n`)
	valueCommaBraceRe   = regexp.MustCompile(`("0x[0-9a-fA-F]+"|true|false|\d+),\s*\}`)
	valueCommaBracketRe = regexp.MustCompile(`("0x[0-9a-fA-F]+"|true|false|\d+),\s*\]`)
)

var errTrailingData = errors.New("trailing data after JSON document")

// translateContent rewrites a Content dump into JSON text and parses it.
func translateContent(raw string, reporter Reporter) (interface{}, error) {
	start := time.Now()

	cleaned := raw
	for _, p := range contentPasses() {
		cleaned = p.apply(cleaned, reporter)
	}

	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.UseNumber()
	var v interface{}
	err := dec.Decode(&v)
	offset := int64(len(cleaned))
	if err == nil {
		switch _, terr := dec.Token(); {
		case terr == nil:
			offset = dec.InputOffset()
			err = errTrailingData
		case errors.Is(terr, io.EOF):
		default:
			err = terr
		}
	}

	reporter.ParseDuration(time.Since(start))

	if err != nil {
		var jsonErr *json.SyntaxError
		if errors.As(err, &jsonErr) {
			offset = jsonErr.Offset
		}
		line, col := lineCol(cleaned, offset)
		reporter.ParseError(line, col)
		return nil, &SyntaxError{Line: line, Column: col, Cleaned: cleaned, err: err}
	}

	return v, nil
}

// eraseWrappers removes every cataloged wrapper token while preserving the
// structural delimiter that follows it.
func eraseWrappers(text string, reporter Reporter) string {
	for _, w := range typeWrappers {
		brace := w + " {"
		if n := strings.Count(text, brace); n > 0 {
			reporter.WrapperMatch(w, n)
			text = strings.ReplaceAll(text, brace, "{")
		}

		paren := w + "("
		if n := strings.Count(text, paren); n > 0 {
			reporter.WrapperMatch(w, n)
			text = strings.ReplaceAll(text, paren, "(")
		}

		// Wrapper and opening brace separated by a newline.
		re := wrapperSpacedRes[w]
		if n := len(re.FindAllStringIndex(text, -1)); n > 0 {
			reporter.WrapperMatch(w, n)
			text = re.ReplaceAllString(text, "{")
		}
	}
	return text
}

// flattenOptions unwraps optional values: the Some( opener is dropped (its
// matching close is consumed by stripParens) and None becomes null.
func flattenOptions(text string, _ Reporter) string {
	text = strings.ReplaceAll(text, "Some(", "")
	text = strings.ReplaceAll(text, "None", "null")
	return text
}

// quoteFields turns every bare occurrence of a cataloged field name into a
// quoted JSON object key.
func quoteFields(text string, reporter Reporter) string {
	for _, f := range fieldNames {
		re := fieldRes[f]
		if n := len(re.FindAllStringIndex(text, -1)); n > 0 {
			reporter.FieldMatch(f, n)
			text = re.ReplaceAllString(text, `"`+f+`":`)
		}
	}
	return text
}

// mapCreate rewrites the bare contract-creation marker to null. Must run
// after quoteFields so the marker cannot be confused with an unquoted key.
func mapCreate(text string, _ Reporter) string {
	text = strings.ReplaceAll(text, "Create,", "null,")
	text = strings.ReplaceAll(text, "Create\n", "null\n")
	return text
}

// quoteHex turns word-bounded hex literals into JSON strings, including the
// empty literal 0x.
func quoteHex(text string, _ Reporter) string {
	return hexLiteralRe.ReplaceAllString(text, `"0x${1}"`)
}

// stripParens removes decorative parentheses. Safe only because the
// structurally meaningful ones were consumed by eraseWrappers and
// flattenOptions.
func stripParens(text string, _ Reporter) string {
	text = parenAfterColonRe.ReplaceAllString(text, ": ")
	text = strings.ReplaceAll(text, "),", ",")
	text = strings.ReplaceAll(text, ")", "")
	text = strings.ReplaceAll(text, "(", "")
	return text
}

// stripResidualTags removes capitalized type tags that the fixed wrapper
// catalog did not cover, both inline before a brace and alone on a line
// preceding one.
func stripResidualTags(text string, _ Reporter) string {
	text = inlineTagRe.ReplaceAllString(text, "{")
	text = danglingTagRe.ReplaceAllString(text, ": {")
	return text
}

// stripDigitSeparators removes grouping underscores from integer literals
// that follow a colon, applied to fixpoint so every group separator in a
// figure disappears.
func stripDigitSeparators(text string, _ Reporter) string {
	for {
		next := groupedDigitsRe.ReplaceAllString(text, ": ${1}")
		if next == text {
			return text
		}
		text = next
	}
}

// normalizeTrailingCommas collapses comma-before-close artifacts until no
// further change occurs. The pass is idempotent.
func normalizeTrailingCommas(text string, _ Reporter) string {
	for {
		prev := text
		text = braceCommaBraceRe.ReplaceAllString(text, "}}")
		text = bracketCommaBraceRe.ReplaceAllString(text, "]}")
		text = braceCommaBracketRe.ReplaceAllString(text, "}]")
		text = commaBraceRe.ReplaceAllString(text, "}")
		text = commaBracketRe.ReplaceAllString(text, "]")
		text = commaOnlyLineRe.ReplaceAllString(text, "\n")
		text = valueCommaBraceRe.ReplaceAllString(text, "${1}}")
		text = valueCommaBracketRe.ReplaceAllString(text, "${1}]")
		if text == prev {
			return text
		}
	}
}

// fixCrossLineCommas drops the trailing comma of a line ending in "}," or
// "]," when the next non-blank line begins with a closer. This catches the
// cases normalizeTrailingCommas cannot see because blank or data lines sit
// between the comma and its closer.
func fixCrossLineCommas(text string, _ Reporter) string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	var b strings.Builder
	b.Grow(len(text) + 1)

	for i := range lines {
		line := strings.TrimRight(lines[i], " \t")

		if strings.HasSuffix(line, "},") || strings.HasSuffix(line, "],") {
			j := i + 1
			for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
				j++
			}
			if j < len(lines) {
				next := strings.TrimSpace(lines[j])
				if strings.HasPrefix(next, "}") || strings.HasPrefix(next, "]") {
					b.WriteString(line[:len(line)-1])
					b.WriteByte('\n')
					continue
				}
			}
		}

		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}
