package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopbooks/chartops/internal/apperrors"
	"github.com/shopbooks/chartops/internal/core/domain"
	portsrepo "github.com/shopbooks/chartops/internal/core/ports/repositories"
)

// ChunkedExecutor commits a flat operation list in consecutive chunks of at
// most chunkSize operations. Chunks commit sequentially in input order; a
// chunk is only submitted after the previous one resolved. On a commit
// failure the remaining chunks are abandoned and the report carries the
// partial progress — the store offers no cross-chunk atomicity, so partial
// application is an accepted, reported outcome.
type ChunkedExecutor struct {
	BaseService
	committer     portsrepo.BatchCommitter
	chunkSize     int
	commitTimeout time.Duration
}

// NewChunkedExecutor creates an executor. chunkSize must stay at or below
// the store's per-transaction operation ceiling; config validation enforces
// that before an executor is ever constructed. A non-positive chunkSize is
// clamped to 1 so Apply's chunk arithmetic always holds. A commitTimeout of
// zero disables the per-chunk deadline.
func NewChunkedExecutor(committer portsrepo.BatchCommitter, chunkSize int, commitTimeout time.Duration) *ChunkedExecutor {
	if chunkSize < 1 {
		chunkSize = 1
	}
	return &ChunkedExecutor{committer: committer, chunkSize: chunkSize, commitTimeout: commitTimeout}
}

// Apply splits ops into chunks and commits them one by one. Each chunk is a
// fresh slice handed to the committer; a committed chunk is never reused.
func (e *ChunkedExecutor) Apply(ctx context.Context, ops []portsrepo.BatchOp) domain.ExecutionReport {
	report := domain.ExecutionReport{
		ChunkSize:   e.chunkSize,
		ChunksTotal: (len(ops) + e.chunkSize - 1) / e.chunkSize,
		FailedChunk: -1,
	}

	for i := 0; i < report.ChunksTotal; i++ {
		start := i * e.chunkSize
		end := start + e.chunkSize
		if end > len(ops) {
			end = len(ops)
		}
		chunk := make([]portsrepo.BatchOp, end-start)
		copy(chunk, ops[start:end])

		if err := e.commitChunk(ctx, chunk); err != nil {
			report.FailedChunk = i
			report.Err = fmt.Errorf("%w: chunk %d of %d: %w", apperrors.ErrBatchCommitFailed, i, report.ChunksTotal, err)
			e.LogError(ctx, err, "Chunk commit failed, abandoning remaining chunks",
				slog.Int("failed_chunk", i),
				slog.Int("chunks_total", report.ChunksTotal),
				slog.Int("ops_committed", report.OpsCommitted))
			return report
		}

		report.ChunksCommitted++
		report.OpsCommitted += len(chunk)
		e.LogDebug(ctx, "Chunk committed",
			slog.Int("chunk", i),
			slog.Int("chunk_ops", len(chunk)),
			slog.Int("ops_committed", report.OpsCommitted))
	}

	return report
}

func (e *ChunkedExecutor) commitChunk(ctx context.Context, chunk []portsrepo.BatchOp) error {
	if e.commitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.commitTimeout)
		defer cancel()
	}
	return e.committer.CommitBatch(ctx, chunk)
}
