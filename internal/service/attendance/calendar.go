package attendance

import (
	"time"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/timefmt"
)

// ClassifyDay assigns exactly one status to a calendar day. Priority:
// present beats everything, including weekends; a class-held day without a
// present record is absent; otherwise Saturdays and Sundays are weekend and
// anything left is no-class. Pure function of its inputs.
func ClassifyDay(day, month, year int, classDates, presentDates attendance.DateSet) attendance.DayStatus {
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	dateKey := timefmt.FormatDateDDMMYYYY(date)

	switch {
	case presentDates.Has(dateKey):
		return attendance.DayPresent
	case classDates.Has(dateKey):
		return attendance.DayAbsent
	case date.Weekday() == time.Saturday || date.Weekday() == time.Sunday:
		return attendance.DayWeekend
	default:
		return attendance.DayNoClass
	}
}

// BuildMonth classifies every day of the given month.
func BuildMonth(month, year int, classDates, presentDates attendance.DateSet) []attendance.CalendarDay {
	// Day zero of the next month is the last day of this one.
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	days := make([]attendance.CalendarDay, 0, lastDay)
	for day := 1; day <= lastDay; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		days = append(days, attendance.CalendarDay{
			Day:    day,
			Date:   timefmt.FormatDateDDMMYYYY(date),
			Status: ClassifyDay(day, month, year, classDates, presentDates),
		})
	}
	return days
}
