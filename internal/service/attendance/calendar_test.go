package attendance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
)

func TestClassifyDay(t *testing.T) {
	// March 2024: the 16th is a Saturday, the 17th a Sunday.
	classDates := attendance.NewDateSet("15-03-2024", "16-03-2024", "18-03-2024")
	presentDates := attendance.NewDateSet("15-03-2024", "16-03-2024")

	tests := []struct {
		name string
		day  int
		want attendance.DayStatus
	}{
		{"present on a weekday", 15, attendance.DayPresent},
		{"present overrides weekend", 16, attendance.DayPresent},
		{"class held but not present", 18, attendance.DayAbsent},
		{"sunday without class", 17, attendance.DayWeekend},
		{"weekday without class", 19, attendance.DayNoClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDay(tt.day, 3, 2024, classDates, presentDates))
		})
	}
}

func TestClassifyDayExclusivity(t *testing.T) {
	classDates := attendance.NewDateSet("04-03-2024", "05-03-2024", "09-03-2024")
	presentDates := attendance.NewDateSet("04-03-2024", "09-03-2024")

	valid := map[attendance.DayStatus]bool{
		attendance.DayPresent: true,
		attendance.DayAbsent:  true,
		attendance.DayWeekend: true,
		attendance.DayNoClass: true,
	}

	for day := 1; day <= 31; day++ {
		status := ClassifyDay(day, 3, 2024, classDates, presentDates)
		assert.True(t, valid[status], "day %d produced %q", day, status)

		dateKey := fmt.Sprintf("%02d-03-2024", day)
		if presentDates.Has(dateKey) {
			assert.Equal(t, attendance.DayPresent, status, "day %d", day)
		}
	}
}

func TestBuildMonth(t *testing.T) {
	classDates := attendance.NewDateSet("01-02-2024")
	presentDates := attendance.NewDateSet()

	days := BuildMonth(2, 2024, classDates, presentDates)

	// 2024 is a leap year.
	assert.Len(t, days, 29)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, "01-02-2024", days[0].Date)
	assert.Equal(t, attendance.DayAbsent, days[0].Status)
	assert.Equal(t, "29-02-2024", days[28].Date)
}

func TestBuildMonthDecember(t *testing.T) {
	days := BuildMonth(12, 2024, attendance.NewDateSet(), attendance.NewDateSet())
	assert.Len(t, days, 31)
	assert.Equal(t, "31-12-2024", days[30].Date)
}
