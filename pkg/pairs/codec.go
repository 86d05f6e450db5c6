package pairs

import (
	"fmt"
	"strings"
)

// The record format is RFC-4180-style CSV, parsed with explicit quote-state
// scans rather than encoding/csv: a stored response may contain embedded
// newlines, partially quoted legacy rows must still load, and a trailing
// fragment without a final newline is a valid last record.

// escapeField wraps a field in double quotes, doubling any embedded quotes,
// when it contains a comma, a quote, or a line break. Other fields are
// written verbatim.
func escapeField(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

// parseLines splits content into records. A newline separates records only
// outside an open quoted field, so quoted responses keep their embedded line
// breaks. Trailing carriage returns are stripped per line and an unterminated
// final fragment is still emitted.
func parseLines(content string) []string {
	var lines []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range content {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			current.WriteRune(ch)
		case ch == '\n' && !inQuotes:
			lines = append(lines, strings.TrimRight(current.String(), "\r"))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	if current.Len() > 0 {
		lines = append(lines, strings.TrimRight(current.String(), "\r"))
	}

	return lines
}

// parseColumns splits one record line into fields. A comma separates fields
// only outside quotes; a doubled quote inside a quoted field decodes to one
// literal quote.
func parseColumns(line string) []string {
	var columns []string
	var current strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			columns = append(columns, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	columns = append(columns, current.String())
	return columns
}

// decodeRecords parses record text strictly: every non-blank line must carry
// 2 fields (prompt, response) or 3 (prompt, response, audioId). Used on bulk
// input so malformed text is rejected before anything is written.
func decodeRecords(content string) ([][]string, error) {
	var records [][]string
	for i, line := range parseLines(content) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		columns := parseColumns(line)
		if len(columns) != 2 && len(columns) != 3 {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrMalformedRecord, i+1, len(columns))
		}
		records = append(records, columns)
	}
	return records, nil
}
