package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"spaces and hyphens stripped", "BSCS 3-B", "bscs3b"},
		{"already normalized", "bscs3b", "bscs3b"},
		{"alternate punctuation", "BSCS-3B", "bscs3b"},
		{"roll number", "CS-101", "cs101"},
		{"nil input", nil, ""},
		{"empty string", "", ""},
		{"whole json number", float64(42), "42"},
		{"fractional json number", 4.5, "45"},
		{"symbols only", "--- ---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeValue(tt.input))
		})
	}
}

func TestNormalizeValueIdempotent(t *testing.T) {
	inputs := []string{"BSCS 3-B", "cs-101", "", "Roll No. 7", "bscs3b"}
	for _, in := range inputs {
		once := NormalizeValue(in)
		assert.Equal(t, once, NormalizeValue(once), "input %q", in)
	}
}

func TestNormalizeRecord(t *testing.T) {
	raw := RawRecord{
		"Roll No": "cs-101",
		"Class":   "BSCS 3-B",
		"Date":    "2024-03-15T08:00:00Z",
		"Time":    "09:15",
	}

	rec := NormalizeRecord(raw)

	assert.Equal(t, "cs-101", rec.RollNumber)
	assert.Equal(t, "BSCS 3-B", rec.Class)
	assert.Equal(t, "15-03-2024", rec.Date)
	assert.Equal(t, "09:15", rec.Time)
	assert.Nil(t, rec.Extra)
}

func TestNormalizeRecordKeyVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  RawRecord
		want Record
	}{
		{
			name: "rollno variant",
			raw:  RawRecord{"rollno": "R1"},
			want: Record{RollNumber: "R1"},
		},
		{
			name: "bare roll variant",
			raw:  RawRecord{"ROLL": "R2"},
			want: Record{RollNumber: "R2"},
		},
		{
			name: "grade maps to class",
			raw:  RawRecord{"Grade": "10-A"},
			want: Record{Class: "10-A"},
		},
		{
			name: "underscored header",
			raw:  RawRecord{"roll_number": "R3"},
			want: Record{RollNumber: "R3"},
		},
		{
			name: "name captured",
			raw:  RawRecord{"Name": "Ayesha"},
			want: Record{Name: "Ayesha"},
		},
		{
			name: "numeric roll number",
			raw:  RawRecord{"Roll No": float64(42)},
			want: Record{RollNumber: "42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRecord(tt.raw))
		})
	}
}

func TestNormalizeRecordPassthrough(t *testing.T) {
	raw := RawRecord{
		"Roll No": "cs-101",
		"Device":  "RFID-01",
		"Remarks": "late entry",
	}

	rec := NormalizeRecord(raw)

	assert.Equal(t, "cs-101", rec.RollNumber)
	assert.Equal(t, "RFID-01", rec.Extra["Device"])
	assert.Equal(t, "late entry", rec.Extra["Remarks"])
}

func TestNormalizeRecordMalformedDatePassesThrough(t *testing.T) {
	rec := NormalizeRecord(RawRecord{"Date": "not-a-date-T-at-all"})
	assert.Equal(t, "not-a-date-T-at-all", rec.Date)
}

func TestNormalizeRecordDayFirstDateNotReparsed(t *testing.T) {
	// 05-03-2024 is already day-first text; re-parsing it through a generic
	// date parser could swap day and month.
	rec := NormalizeRecord(RawRecord{"Date": "05-03-2024"})
	assert.Equal(t, "05-03-2024", rec.Date)
}

func TestNormalizeRecords(t *testing.T) {
	raws := []RawRecord{
		{"Roll No": "R1", "Class": "A"},
		{"Roll No": "R2", "Class": "B"},
	}

	records := NormalizeRecords(raws)

	assert.Len(t, records, 2)
	assert.Equal(t, "R1", records[0].RollNumber)
	assert.Equal(t, "B", records[1].Class)
}
