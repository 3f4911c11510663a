package firestore

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"

	portsrepo "github.com/shopbooks/chartops/internal/core/ports/repositories"
)

// BatchRepository commits one chunk of writes as a single Firestore write
// batch. A fresh *firestore.WriteBatch is constructed per call; committed
// batch handles are never reused.
type BatchRepository struct {
	client *firestore.Client
}

// NewBatchRepository creates a new BatchRepository.
func NewBatchRepository(client *firestore.Client) *BatchRepository {
	return &BatchRepository{client: client}
}

var _ portsrepo.BatchCommitter = (*BatchRepository)(nil)

// CommitBatch translates the ops into one write batch and commits it. The
// caller is responsible for keeping len(ops) at or below the store's 500-op
// per-transaction ceiling.
func (r *BatchRepository) CommitBatch(ctx context.Context, ops []portsrepo.BatchOp) error {
	if len(ops) == 0 {
		return nil
	}

	batch := r.client.Batch()
	for _, op := range ops {
		ref := r.client.Collection(op.Collection).Doc(op.DocID)
		switch op.Kind {
		case portsrepo.BatchOpCreate:
			batch.Create(ref, op.Data)
		case portsrepo.BatchOpUpdate:
			batch.Update(ref, fieldUpdates(op.Updates))
		case portsrepo.BatchOpDelete:
			batch.Delete(ref)
		default:
			return fmt.Errorf("unknown batch op kind %q", op.Kind)
		}
	}

	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("committing %d ops: %w", len(ops), err)
	}
	return nil
}

// fieldUpdates converts an update map into firestore field updates in a
// deterministic order.
func fieldUpdates(updates map[string]any) []firestore.Update {
	paths := make([]string, 0, len(updates))
	for path := range updates {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	out := make([]firestore.Update, 0, len(paths))
	for _, path := range paths {
		out = append(out, firestore.Update{Path: path, Value: updates[path]})
	}
	return out
}
