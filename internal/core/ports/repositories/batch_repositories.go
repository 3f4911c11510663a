package repositories

import "context"

// BatchOpKind discriminates the store-level write operations a batch carries.
type BatchOpKind string

const (
	BatchOpCreate BatchOpKind = "CREATE"
	BatchOpUpdate BatchOpKind = "UPDATE"
	BatchOpDelete BatchOpKind = "DELETE"
)

// BatchOp is one write against a single document. Create carries the full
// document payload; update carries only the fields to change.
type BatchOp struct {
	Kind       BatchOpKind
	Collection string
	DocID      string
	Data       map[string]any // Create payload
	Updates    map[string]any // Update field set
}

// BatchCommitter commits one bounded group of writes as a single store
// transaction. Callers must keep each call at or below the store's hard
// per-transaction operation ceiling; chunking is the executor's job.
type BatchCommitter interface {
	CommitBatch(ctx context.Context, ops []BatchOp) error
}
