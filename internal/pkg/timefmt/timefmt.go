// Package timefmt centralizes the day-first date text format used by the
// attendance ledger. Every producer of a date key goes through this package so
// padding and separators stay deterministic across the codebase.
package timefmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ledger's wire format for dates: DD-MM-YYYY.
const DateLayout = "02-01-2006"

// FormatDateDDMMYYYY renders t in the ledger's day-first text format,
// zero-padded day and month, four-digit year.
func FormatDateDDMMYYYY(t time.Time) string {
	return fmt.Sprintf("%02d-%02d-%04d", t.Day(), int(t.Month()), t.Year())
}

// ParseDDMMYYYY parses day-first ledger date text back into a time.Time.
func ParseDDMMYYYY(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// isoLayouts are the timestamp encodings the spreadsheet API is known to emit
// when a cell holds a native date value.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// NormalizeDateText converts ISO timestamp text into day-first ledger text.
//
// Only values containing the literal 'T' are re-parsed: day-first text also
// contains '-', and running it through a generic parser risks a silent
// day/month swap under a month-first locale. Anything that fails to parse
// passes through unchanged.
func NormalizeDateText(raw string) string {
	if !strings.Contains(raw, "T") {
		return raw
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
			return FormatDateDDMMYYYY(t)
		}
	}
	return raw
}

var amPMRegex = regexp.MustCompile(`(?i)^\s*\d{1,2}:\d{2}(:\d{2})?\s*(AM|PM)\s*$`)
var clock24Regex = regexp.MustCompile(`^\s*(\d{1,2}):(\d{1,2})`)

// FormatTimeReadable renders a raw ledger time value as 12-hour "H:MM AM/PM"
// text. Timestamps are parsed and their clock time extracted; text already in
// AM/PM form passes through; bare 24-hour "HH:MM" text is converted. Input
// that matches none of these passes through unchanged so a rendering pass
// never fails on a garbled cell.
func FormatTimeReadable(raw string) string {
	if strings.Contains(raw, "T") || strings.Contains(raw, "-") {
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
				return t.Format("3:04 PM")
			}
		}
		return raw
	}

	if amPMRegex.MatchString(raw) {
		return strings.TrimSpace(raw)
	}

	m := clock24Regex.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return raw
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return raw
	}

	suffix := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		hour -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}
