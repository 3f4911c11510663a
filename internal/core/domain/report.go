package domain

import "time"

// ExecutionReport summarizes one chunked batch run. Partial application is a
// reported outcome, not a hidden one: already committed chunks are never
// rolled back on a later chunk's failure.
type ExecutionReport struct {
	ChunkSize       int
	ChunksTotal     int
	ChunksCommitted int
	OpsCommitted    int
	FailedChunk     int // 0-based index of the failed chunk, -1 when none failed
	Err             error
}

// Failed reports whether the run stopped on a chunk commit failure.
func (r ExecutionReport) Failed() bool {
	return r.Err != nil
}

// VerificationReport is the post-run diff between expected and observed state.
// UnexpectedRemaining lists account codes that should have been deleted but
// were still present on re-read; with an eventually consistent store this is
// a warning, not a hard failure.
type VerificationReport struct {
	Preserved           []string
	Deleted             []string
	UnexpectedRemaining []string
}

// Clean reports whether the observed state matched the expected one.
func (r VerificationReport) Clean() bool {
	return len(r.UnexpectedRemaining) == 0
}

// RunSummary is the outcome of one reconciliation workflow for one shop
// (or, for the rename flow, for the whole directory).
type RunSummary struct {
	ShopID         string
	Mode           PlanMode
	Creates        int
	Updates        int
	Deletes        int
	PreservedCount int
	Execution      ExecutionReport
	Verification   *VerificationReport
	Skipped        []SkippedAccount
}

// Failed reports whether the run's execution stopped on an error.
func (s RunSummary) Failed() bool {
	return s.Execution.Err != nil
}

// WipeSummary is the outcome of a full tenant wipe.
type WipeSummary struct {
	ShopID              string
	DeletedByCollection map[string]int
	UsersUnlinked       int
	ShopDeleted         bool
}

// CollectionBackup records the export outcome of one collection.
type CollectionBackup struct {
	Name      string
	Count     int
	Succeeded bool
	Error     string
}

// BackupSummary describes one backup export directory.
type BackupSummary struct {
	Dir         string
	TakenAt     time.Time
	Timezone    string
	Collections []CollectionBackup
}

// Succeeded reports whether every collection exported cleanly.
func (s BackupSummary) Succeeded() bool {
	for _, c := range s.Collections {
		if !c.Succeeded {
			return false
		}
	}
	return true
}

// DateFixSummary is the outcome of the legacy date normalization sweep.
type DateFixSummary struct {
	Scanned           int
	Updated           int
	AlreadyNormalized int
	Unparseable       int
	Execution         ExecutionReport
}
