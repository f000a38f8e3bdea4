package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/domain/roster"
)

func ledgerRec(roll, name, class string) attendance.Record {
	return attendance.Record{RollNumber: roll, Name: name, Class: class}
}

func TestMergeRostersStorePrecedence(t *testing.T) {
	ledger := []attendance.Record{
		ledgerRec("R1", "Old Name", "A"),
	}
	store := []roster.Entry{
		{ID: "doc1", RollNumber: "R1", Name: "New Name", Class: "A"},
	}

	merged := MergeRosters(ledger, store)

	assert.Len(t, merged, 1)
	assert.Equal(t, "doc1", merged[0].ID)
	assert.Equal(t, "New Name", merged[0].Name)
	assert.Equal(t, roster.SourceStore, merged[0].Source)
}

func TestMergeRostersSynthesizedEntry(t *testing.T) {
	ledger := []attendance.Record{
		ledgerRec("R7", "Bilal", "BSCS 3-B"),
	}

	merged := MergeRosters(ledger, nil)

	assert.Len(t, merged, 1)
	assert.Equal(t, "sheet-R7", merged[0].ID)
	assert.Equal(t, "Bilal", merged[0].Name)
	assert.Equal(t, roster.SourceLedger, merged[0].Source)
}

func TestMergeRostersFirstSeenWinsAmongLedger(t *testing.T) {
	ledger := []attendance.Record{
		ledgerRec("R1", "First", "A"),
		ledgerRec("R1", "Second", "A"),
	}

	merged := MergeRosters(ledger, nil)

	assert.Len(t, merged, 1)
	assert.Equal(t, "First", merged[0].Name)
}

func TestMergeRostersEmptyRollNumberSkipped(t *testing.T) {
	ledger := []attendance.Record{
		ledgerRec("", "Ghost", "A"),
		ledgerRec("R1", "Real", "A"),
	}

	merged := MergeRosters(ledger, nil)

	assert.Len(t, merged, 1)
	assert.Equal(t, "R1", merged[0].RollNumber)
}

func TestMergeRostersTotality(t *testing.T) {
	ledger := []attendance.Record{
		ledgerRec("R1", "One", "A"),
		ledgerRec("R2", "Two", "A"),
	}
	store := []roster.Entry{
		{ID: "doc2", RollNumber: "R2", Name: "Two Revised", Class: "A"},
		{ID: "doc3", RollNumber: "R3", Name: "Three", Class: "B"},
	}

	merged := MergeRosters(ledger, store)

	rolls := make(map[string]int)
	for _, e := range merged {
		rolls[e.RollNumber]++
	}
	assert.Equal(t, map[string]int{"R1": 1, "R2": 1, "R3": 1}, rolls)
}

func TestMergeRostersSorted(t *testing.T) {
	store := []roster.Entry{
		{ID: "d1", RollNumber: "R9", Name: "N", Class: "B"},
		{ID: "d2", RollNumber: "R2", Name: "N", Class: "A"},
		{ID: "d3", RollNumber: "R1", Name: "N", Class: "B"},
	}

	merged := MergeRosters(nil, store)

	assert.Equal(t, "R2", merged[0].RollNumber) // class A first
	assert.Equal(t, "R1", merged[1].RollNumber) // class B, R1 before R9
	assert.Equal(t, "R9", merged[2].RollNumber)
}

func TestMergeRostersIdempotent(t *testing.T) {
	ledger := []attendance.Record{
		ledgerRec("R1", "One", "A"),
		ledgerRec("R2", "Two", "B"),
	}
	store := []roster.Entry{
		{ID: "doc1", RollNumber: "R1", Name: "One Revised", Class: "A"},
	}

	first := MergeRosters(ledger, store)
	second := MergeRosters(ledger, store)

	assert.Equal(t, first, second)
}
