package attendance

import (
	"fmt"
	"strings"

	"github.com/edutrack/edutrack-backend-go/internal/pkg/timefmt"
)

// NormalizeValue reduces an identifier to lowercase alphanumerics for
// tolerant equality comparison: "BSCS 3-B", "BSCS-3B" and "bscs3b" all
// collapse to "bscs3b". Total over any input; nil becomes "".
func NormalizeValue(v any) string {
	if v == nil {
		return ""
	}
	var raw string
	switch val := v.(type) {
	case string:
		raw = val
	case fmt.Stringer:
		raw = val.String()
	case float64:
		// JSON numbers decode as float64; whole values must not grow a
		// trailing ".0" or roll numbers stop matching.
		if val == float64(int64(val)) {
			raw = fmt.Sprintf("%d", int64(val))
		} else {
			raw = fmt.Sprintf("%v", val)
		}
	default:
		raw = fmt.Sprintf("%v", val)
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// canonicalKey lowercases a column header and strips everything outside
// [a-z0-9], so "Roll No", "roll_no" and "RollNo" all become "rollno".
func canonicalKey(key string) string {
	return NormalizeValue(key)
}

// stringValue renders a raw cell value as text without inventing decimals
// for whole numbers.
func stringValue(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// NormalizeRecord canonicalizes one raw ledger row into the fixed Record
// shape. Column headers are matched by canonical key; recognized variants
// fill the fixed fields and every other column passes through into Extra
// under its original key with its original value. The date field is reshaped
// into day-first DD-MM-YYYY text when the source value looks like an ISO
// timestamp; malformed dates pass through unchanged rather than failing the
// row.
func NormalizeRecord(raw RawRecord) Record {
	var rec Record
	for key, value := range raw {
		switch canonicalKey(key) {
		case "rollnumber", "rollno", "roll":
			rec.RollNumber = stringValue(value)
		case "class", "grade":
			rec.Class = stringValue(value)
		case "date":
			rec.Date = timefmt.NormalizeDateText(stringValue(value))
		case "time":
			rec.Time = stringValue(value)
		case "name", "studentname":
			rec.Name = stringValue(value)
		case "id":
			rec.ID = stringValue(value)
		default:
			if rec.Extra == nil {
				rec.Extra = make(map[string]any)
			}
			rec.Extra[key] = value
		}
	}
	return rec
}

// NormalizeRecords maps NormalizeRecord over a whole ledger fetch.
func NormalizeRecords(raws []RawRecord) []Record {
	records := make([]Record, 0, len(raws))
	for _, raw := range raws {
		records = append(records, NormalizeRecord(raw))
	}
	return records
}
