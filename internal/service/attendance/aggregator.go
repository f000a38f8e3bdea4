package attendance

import (
	"fmt"
	"sort"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/timefmt"
)

// StatsResult carries everything one stats pass produces: the summary
// numbers, the student's own rows newest first, and the two date sets the
// calendar classifier consumes.
type StatsResult struct {
	Stats        attendance.Stats
	MyRecords    []attendance.Record
	ClassDates   attendance.DateSet
	PresentDates attendance.DateSet
}

// ComputeStats derives one student's attendance statistics from a normalized
// ledger. The denominator is the set of dates the class was actually held,
// which is the set of distinct dates carrying at least one row for that
// class. Duplicate rows for the same student and date collapse via set
// semantics, so an at-least-once append transport cannot inflate the counts.
// Roll number and class matching is punctuation and case insensitive.
func ComputeStats(ledger []attendance.Record, targetRollNumber, targetClass string) StatsResult {
	targetRoll := attendance.NormalizeValue(targetRollNumber)
	targetCls := attendance.NormalizeValue(targetClass)

	classDates := attendance.NewDateSet()
	presentDates := attendance.NewDateSet()
	myRecords := make([]attendance.Record, 0)

	for _, rec := range ledger {
		if attendance.NormalizeValue(rec.Class) != targetCls {
			continue
		}
		classDates.Add(rec.Date)

		if attendance.NormalizeValue(rec.RollNumber) == targetRoll {
			presentDates.Add(rec.Date)
			myRecords = append(myRecords, rec)
		}
	}

	// Newest first. Day-first text sorts wrong lexicographically, so parse;
	// rows with unparseable dates keep their relative order.
	sort.SliceStable(myRecords, func(i, j int) bool {
		ti, errI := timefmt.ParseDDMMYYYY(myRecords[i].Date)
		tj, errJ := timefmt.ParseDDMMYYYY(myRecords[j].Date)
		if errI != nil || errJ != nil {
			return false
		}
		return ti.After(tj)
	})

	totalClassDays := len(classDates)
	present := len(presentDates)
	absent := totalClassDays - present
	if absent < 0 {
		absent = 0
	}

	percentage := "0"
	if totalClassDays > 0 {
		percentage = fmt.Sprintf("%.1f", float64(present)/float64(totalClassDays)*100)
	}

	return StatsResult{
		Stats: attendance.Stats{
			TotalClassDays: totalClassDays,
			Present:        present,
			Absent:         absent,
			Percentage:     percentage,
		},
		MyRecords:    myRecords,
		ClassDates:   classDates,
		PresentDates: presentDates,
	}
}

// sortedDates renders a date set as a chronologically ascending slice.
// Unparseable dates go last, lexicographically, so the output stays
// deterministic regardless of map iteration order.
func sortedDates(set attendance.DateSet) []string {
	parseable := make([]string, 0, len(set))
	garbled := make([]string, 0)
	for d := range set {
		if _, err := timefmt.ParseDDMMYYYY(d); err != nil {
			garbled = append(garbled, d)
			continue
		}
		parseable = append(parseable, d)
	}

	sort.Slice(parseable, func(i, j int) bool {
		ti, _ := timefmt.ParseDDMMYYYY(parseable[i])
		tj, _ := timefmt.ParseDDMMYYYY(parseable[j])
		return ti.Before(tj)
	})
	sort.Strings(garbled)

	return append(parseable, garbled...)
}
