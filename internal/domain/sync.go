package domain

import "time"

// SyncMetadata tracks the last ingestion of a source file by a phase
type SyncMetadata struct {
	ConfigName   string    `json:"config_name" db:"config_name"`
	LastSyncTime time.Time `json:"last_sync_time" db:"last_sync_time"`
	FileHash     string    `json:"file_hash" db:"file_hash"`
	FileModTime  time.Time `json:"file_mod_time" db:"file_mod_time"`
}

// Outcome is what an upsert did to its target row
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeInserted
	OutcomeUpdated
	OutcomeUnchanged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeUpdated:
		return "updated"
	case OutcomeUnchanged:
		return "unchanged"
	default:
		return "skipped"
	}
}

// Tally counts outcomes for one entity type. Failed counts records whose
// processing returned an error.
type Tally struct {
	Inserted  int `json:"inserted"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// Add counts one outcome
func (t *Tally) Add(o Outcome) {
	switch o {
	case OutcomeInserted:
		t.Inserted++
	case OutcomeUpdated:
		t.Updated++
	case OutcomeUnchanged:
		t.Unchanged++
	default:
		t.Skipped++
	}
}

// Merge adds every count of o
func (t *Tally) Merge(o Tally) {
	t.Inserted += o.Inserted
	t.Updated += o.Updated
	t.Unchanged += o.Unchanged
	t.Skipped += o.Skipped
	t.Failed += o.Failed
}

// Upserted is the number of records present in the catalog after the run.
// A repeated run moves records from Inserted to Unchanged, not to Updated,
// and leaves Upserted as it was.
func (t Tally) Upserted() int {
	return t.Inserted + t.Updated + t.Unchanged
}

// Total is the number of records counted
func (t Tally) Total() int {
	return t.Inserted + t.Updated + t.Unchanged + t.Skipped + t.Failed
}
