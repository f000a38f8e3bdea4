package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
)

func rec(roll, class, date string) attendance.Record {
	return attendance.Record{RollNumber: roll, Class: class, Date: date}
}

func TestComputeStatsScenario(t *testing.T) {
	ledger := []attendance.Record{
		rec("R1", "A", "01-01-2024"),
		rec("R2", "A", "01-01-2024"),
		rec("R2", "A", "02-01-2024"),
		rec("R1", "A", "03-01-2024"),
	}

	result := ComputeStats(ledger, "R1", "A")

	assert.Equal(t, 3, result.Stats.TotalClassDays)
	assert.Equal(t, 2, result.Stats.Present)
	assert.Equal(t, 1, result.Stats.Absent)
	assert.Equal(t, "66.7", result.Stats.Percentage)
}

func TestComputeStatsConservation(t *testing.T) {
	ledger := []attendance.Record{
		rec("R1", "A", "01-01-2024"),
		rec("R2", "A", "02-01-2024"),
		rec("R3", "A", "03-01-2024"),
		rec("R1", "A", "04-01-2024"),
	}

	result := ComputeStats(ledger, "R1", "A")

	assert.Equal(t, result.Stats.TotalClassDays, result.Stats.Present+result.Stats.Absent)
	assert.GreaterOrEqual(t, result.Stats.Absent, 0)
}

func TestComputeStatsDuplicateScansCollapse(t *testing.T) {
	// Two scans on the same day count as one present day.
	ledger := []attendance.Record{
		rec("R1", "A", "01-01-2024"),
		rec("R1", "A", "01-01-2024"),
		rec("R2", "A", "02-01-2024"),
	}

	result := ComputeStats(ledger, "R1", "A")

	assert.Equal(t, 2, result.Stats.TotalClassDays)
	assert.Equal(t, 1, result.Stats.Present)
	assert.Equal(t, 1, result.Stats.Absent)
}

func TestComputeStatsEmptyLedger(t *testing.T) {
	result := ComputeStats(nil, "R1", "A")

	assert.Equal(t, 0, result.Stats.TotalClassDays)
	assert.Equal(t, 0, result.Stats.Present)
	assert.Equal(t, 0, result.Stats.Absent)
	assert.Equal(t, "0", result.Stats.Percentage)
	assert.Empty(t, result.MyRecords)
}

func TestComputeStatsTolerantMatching(t *testing.T) {
	ledger := []attendance.Record{
		rec("CS-101", "BSCS 3-B", "01-01-2024"),
		rec("cs101", "bscs-3b", "02-01-2024"),
	}

	result := ComputeStats(ledger, "cs 101", "BSCS3B")

	assert.Equal(t, 2, result.Stats.TotalClassDays)
	assert.Equal(t, 2, result.Stats.Present)
	assert.Equal(t, "100.0", result.Stats.Percentage)
}

func TestComputeStatsOtherClassesExcluded(t *testing.T) {
	ledger := []attendance.Record{
		rec("R1", "A", "01-01-2024"),
		rec("R1", "B", "02-01-2024"),
		rec("R2", "B", "03-01-2024"),
	}

	result := ComputeStats(ledger, "R1", "A")

	assert.Equal(t, 1, result.Stats.TotalClassDays)
	assert.Equal(t, 1, result.Stats.Present)
	assert.Equal(t, 0, result.Stats.Absent)
}

func TestComputeStatsRecordsSortedNewestFirst(t *testing.T) {
	// 05-02-2024 is lexicographically before 28-01-2024 but chronologically
	// after it; sorting must go through real dates.
	ledger := []attendance.Record{
		rec("R1", "A", "28-01-2024"),
		rec("R1", "A", "05-02-2024"),
		rec("R1", "A", "15-12-2023"),
	}

	result := ComputeStats(ledger, "R1", "A")

	dates := make([]string, 0, len(result.MyRecords))
	for _, r := range result.MyRecords {
		dates = append(dates, r.Date)
	}
	assert.Equal(t, []string{"05-02-2024", "28-01-2024", "15-12-2023"}, dates)
}

func TestSortedDatesChronological(t *testing.T) {
	set := attendance.NewDateSet("05-02-2024", "28-01-2024", "15-12-2023")
	assert.Equal(t, []string{"15-12-2023", "28-01-2024", "05-02-2024"}, sortedDates(set))
}

func TestSortedDatesGarbledLast(t *testing.T) {
	set := attendance.NewDateSet("01-01-2024", "not-a-date")
	assert.Equal(t, []string{"01-01-2024", "not-a-date"}, sortedDates(set))
}
