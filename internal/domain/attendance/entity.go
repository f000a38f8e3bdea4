package attendance

// RawRecord is a ledger row exactly as the spreadsheet endpoint returns it:
// arbitrary column names, arbitrary value types, no schema guarantees.
type RawRecord map[string]any

// Record is a ledger row after column canonicalization. Known columns land in
// the fixed fields; anything unrecognized survives in Extra under its
// original key. Duplicate rows for the same student and date are legal and
// collapse during aggregation, not here.
type Record struct {
	ID         string         `json:"id,omitempty"`
	RollNumber string         `json:"roll_number"`
	Name       string         `json:"name"`
	Class      string         `json:"class"`
	Date       string         `json:"date"` // day-first DD-MM-YYYY text when recognizable
	Time       string         `json:"time"`
	Extra      map[string]any `json:"extra,omitempty"`
}

// Stats summarizes one student's standing against the days their class was
// actually held, which is not the same as all calendar days.
type Stats struct {
	TotalClassDays int    `json:"total_class_days"`
	Present        int    `json:"present"`
	Absent         int    `json:"absent"`
	Percentage     string `json:"percentage"`
}

// DayStatus classifies a single calendar day for a student.
type DayStatus string

const (
	DayPresent DayStatus = "present"
	DayAbsent  DayStatus = "absent"
	DayWeekend DayStatus = "weekend"
	DayNoClass DayStatus = "no-class"
)

// DateSet is a set of DD-MM-YYYY date strings. String keys are safe here
// because every producer goes through the same zero-padded formatter.
type DateSet map[string]struct{}

func NewDateSet(dates ...string) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

func (s DateSet) Add(date string) {
	s[date] = struct{}{}
}

func (s DateSet) Has(date string) bool {
	_, ok := s[date]
	return ok
}
