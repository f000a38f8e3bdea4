package roster

import (
	"sort"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/domain/roster"
)

// MergeRosters combines students synthesized from historical ledger rows
// with entries from the authoritative roster store. The accumulator is keyed
// by the raw roll number string. Ledger rows are first-seen-wins among
// themselves; store entries unconditionally overwrite whatever holds their
// slot, so the store always wins regardless of input order. Ledger rows with
// an empty roll number are skipped entirely. The result is sorted by class
// then roll number, which together with the keyed overwrite makes the merge
// idempotent.
func MergeRosters(ledgerRecords []attendance.Record, storeEntries []roster.Entry) []roster.Entry {
	merged := make(map[string]roster.Entry, len(ledgerRecords)+len(storeEntries))

	for _, rec := range ledgerRecords {
		if rec.RollNumber == "" {
			continue
		}
		if _, ok := merged[rec.RollNumber]; ok {
			continue
		}
		merged[rec.RollNumber] = roster.Entry{
			ID:         "sheet-" + rec.RollNumber,
			Name:       rec.Name,
			RollNumber: rec.RollNumber,
			Class:      rec.Class,
			Source:     roster.SourceLedger,
		}
	}

	for _, entry := range storeEntries {
		entry.Source = roster.SourceStore
		merged[entry.RollNumber] = entry
	}

	result := make([]roster.Entry, 0, len(merged))
	for _, entry := range merged {
		result = append(result, entry)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Class != result[j].Class {
			return result[i].Class < result[j].Class
		}
		return result[i].RollNumber < result[j].RollNumber
	})

	return result
}
