package timefmt

import (
	"testing"
	"time"
)

func TestFormatDateDDMMYYYY(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		day   int
		want  string
	}{
		{2024, time.March, 15, "15-03-2024"},
		{2024, time.January, 1, "01-01-2024"},
		{1999, time.December, 31, "31-12-1999"},
		{2025, time.September, 9, "09-09-2025"},
	}
	for _, c := range cases {
		got := FormatDateDDMMYYYY(time.Date(c.year, c.month, c.day, 13, 30, 0, 0, time.UTC))
		if got != c.want {
			t.Errorf("FormatDateDDMMYYYY(%d-%d-%d) = %q, want %q", c.day, c.month, c.year, got, c.want)
		}
	}
}

func TestParseDDMMYYYYRoundTrip(t *testing.T) {
	for _, s := range []string{"01-01-2024", "29-02-2024", "15-03-2024"} {
		parsed, err := ParseDDMMYYYY(s)
		if err != nil {
			t.Fatalf("ParseDDMMYYYY(%q) error: %v", s, err)
		}
		if got := FormatDateDDMMYYYY(parsed); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

func TestNormalizeDateText(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		// ISO timestamps are reshaped
		{"2024-03-15T08:00:00Z", "15-03-2024"},
		{"2024-03-15T08:00:00", "15-03-2024"},
		{"2024-12-01T23:59:00+05:00", "01-12-2024"},
		// Already day-first text must never be re-parsed: a generic parser
		// could read 05-03 as May 3rd.
		{"15-03-2024", "15-03-2024"},
		{"05-03-2024", "05-03-2024"},
		// Plain ISO date without T is left alone (strict rule)
		{"2024-03-15", "2024-03-15"},
		// Garbage passes through
		{"not a date T whatsoever", "not a date T whatsoever"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeDateText(c.input); got != c.want {
			t.Errorf("NormalizeDateText(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestFormatTimeReadable(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		// 24-hour text
		{"09:15", "9:15 AM"},
		{"00:30", "12:30 AM"},
		{"12:00", "12:00 PM"},
		{"13:05", "1:05 PM"},
		{"23:59", "11:59 PM"},
		// Already 12-hour text passes through
		{"9:15 AM", "9:15 AM"},
		{"11:45 pm", "11:45 pm"},
		// Timestamp input yields its clock time
		{"2024-03-15T08:05:00Z", "8:05 AM"},
		{"2024-03-15T17:40:00Z", "5:40 PM"},
		// Unparseable input passes through unchanged
		{"noon-ish", "noon-ish"},
		{"99:99", "99:99"},
		{"", ""},
	}
	for _, c := range cases {
		if got := FormatTimeReadable(c.input); got != c.want {
			t.Errorf("FormatTimeReadable(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
