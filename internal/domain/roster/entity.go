package roster

import "time"

// Source tells where a roster entry came from. Ledger-derived entries are
// ephemeral, synthesized on every load; store entries are the editable,
// authoritative record.
type Source string

const (
	SourceLedger Source = "sheet"
	SourceStore  Source = "firestore"
)

// Entry is one student in a class roster. For ledger-derived entries ID is
// synthesized as "sheet-" plus the roll number and is never persisted, only
// used for list keying.
type Entry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	RollNumber string    `json:"roll_number"`
	Class      string    `json:"class"`
	Source     Source    `json:"source"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
