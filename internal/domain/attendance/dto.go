package attendance

import (
	"github.com/edutrack/edutrack-backend-go/internal/pkg/validator"
)

// ListAttendanceFilter narrows the ledger history view. All filters are
// optional; matching on class and roll number is punctuation-insensitive.
type ListAttendanceFilter struct {
	Class      *string `json:"class,omitempty"`
	RollNumber *string `json:"roll_number,omitempty"`
	Date       *string `json:"date,omitempty"`
}

// MarkStudent is one student inside a batch submission.
type MarkStudent struct {
	RollNumber string `json:"roll_number"`
	Name       string `json:"name"`
}

// MarkAttendanceRequest records a batch of students present for a class.
// Each student becomes an independent ledger append; the batch is best
// effort, not transactional.
type MarkAttendanceRequest struct {
	Class    string        `json:"class"`
	Date     string        `json:"date,omitempty"` // DD-MM-YYYY, defaults to today
	Students []MarkStudent `json:"students"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Class) {
		errs = append(errs, validator.ValidationError{
			Field:   "class",
			Message: "class is required",
		})
	}

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidLedgerDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in DD-MM-YYYY format",
			})
		}
	}

	for _, s := range r.Students {
		if validator.IsEmpty(s.RollNumber) {
			errs = append(errs, validator.ValidationError{
				Field:   "students",
				Message: "roll_number is required for every student",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MarkAttendanceResponse reports how many appends were dispatched and the
// stamp they carried.
type MarkAttendanceResponse struct {
	Marked int    `json:"marked"`
	Class  string `json:"class"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// StatsResponse is the student dashboard payload: summary numbers, the
// student's own rows sorted newest first, and the two date sets that drive
// the calendar.
type StatsResponse struct {
	Stats        Stats    `json:"stats"`
	Records      []Record `json:"records"`
	ClassDates   []string `json:"class_dates"`
	PresentDates []string `json:"present_dates"`
}

// CalendarRequest selects the month to classify.
type CalendarRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *CalendarRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 1970 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CalendarDay is one classified day of the requested month.
type CalendarDay struct {
	Day    int       `json:"day"`
	Date   string    `json:"date"` // DD-MM-YYYY
	Status DayStatus `json:"status"`
}

// CalendarResponse is the month view for the student dashboard calendar.
type CalendarResponse struct {
	Month int           `json:"month"`
	Year  int           `json:"year"`
	Days  []CalendarDay `json:"days"`
}
