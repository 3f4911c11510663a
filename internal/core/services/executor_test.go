package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopbooks/chartops/internal/apperrors"
	portsrepo "github.com/shopbooks/chartops/internal/core/ports/repositories"
	"github.com/shopbooks/chartops/internal/core/services"
)

func deleteOps(n int) []portsrepo.BatchOp {
	ops := make([]portsrepo.BatchOp, n)
	for i := range ops {
		ops[i] = portsrepo.BatchOp{
			Kind:       portsrepo.BatchOpDelete,
			Collection: portsrepo.CollectionAccounts,
			DocID:      fmt.Sprintf("doc-%04d", i),
		}
	}
	return ops
}

func TestChunkedExecutor_SplitsIntoChunks(t *testing.T) {
	committer := new(MockBatchCommitter)
	committer.On("CommitBatch", mock.Anything, mock.Anything).Return(nil)

	executor := services.NewChunkedExecutor(committer, 500, 0)
	report := executor.Apply(context.Background(), deleteOps(1200))

	require.False(t, report.Failed())
	assert.Equal(t, 3, report.ChunksTotal)
	assert.Equal(t, 3, report.ChunksCommitted)
	assert.Equal(t, 1200, report.OpsCommitted)
	assert.Equal(t, -1, report.FailedChunk)

	require.Len(t, committer.Chunks, 3)
	assert.Len(t, committer.Chunks[0], 500)
	assert.Len(t, committer.Chunks[1], 500)
	assert.Len(t, committer.Chunks[2], 200)

	// Order within and across chunks follows the input list.
	assert.Equal(t, "doc-0000", committer.Chunks[0][0].DocID)
	assert.Equal(t, "doc-0500", committer.Chunks[1][0].DocID)
	assert.Equal(t, "doc-1199", committer.Chunks[2][199].DocID)

	committer.AssertNumberOfCalls(t, "CommitBatch", 3)
}

func TestChunkedExecutor_StopsAtFirstFailedChunk(t *testing.T) {
	committer := new(MockBatchCommitter)
	storeErr := errors.New("deadline exceeded")
	committer.On("CommitBatch", mock.Anything, mock.MatchedBy(func(ops []portsrepo.BatchOp) bool {
		return ops[0].DocID == "doc-0000"
	})).Return(nil).Once()
	committer.On("CommitBatch", mock.Anything, mock.Anything).Return(storeErr)

	executor := services.NewChunkedExecutor(committer, 500, 0)
	report := executor.Apply(context.Background(), deleteOps(1200))

	require.True(t, report.Failed())
	assert.Equal(t, 500, report.OpsCommitted)
	assert.Equal(t, 1, report.ChunksCommitted)
	assert.Equal(t, 1, report.FailedChunk)
	assert.ErrorIs(t, report.Err, apperrors.ErrBatchCommitFailed)
	assert.ErrorIs(t, report.Err, storeErr)

	// The third chunk is never attempted.
	committer.AssertNumberOfCalls(t, "CommitBatch", 2)
}

func TestChunkedExecutor_EmptyListIsNoOp(t *testing.T) {
	committer := new(MockBatchCommitter)

	executor := services.NewChunkedExecutor(committer, 450, 0)
	report := executor.Apply(context.Background(), nil)

	assert.False(t, report.Failed())
	assert.Equal(t, 0, report.ChunksTotal)
	assert.Equal(t, 0, report.OpsCommitted)
	committer.AssertNotCalled(t, "CommitBatch", mock.Anything, mock.Anything)
}

func TestChunkedExecutor_SingleShortChunk(t *testing.T) {
	committer := new(MockBatchCommitter)
	committer.On("CommitBatch", mock.Anything, mock.Anything).Return(nil)

	executor := services.NewChunkedExecutor(committer, 450, 0)
	report := executor.Apply(context.Background(), deleteOps(7))

	assert.Equal(t, 1, report.ChunksTotal)
	assert.Equal(t, 7, report.OpsCommitted)
	require.Len(t, committer.Chunks, 1)
	assert.Len(t, committer.Chunks[0], 7)
}

func TestChunkedExecutor_ClampsNonPositiveChunkSize(t *testing.T) {
	committer := new(MockBatchCommitter)
	committer.On("CommitBatch", mock.Anything, mock.Anything).Return(nil)

	executor := services.NewChunkedExecutor(committer, 0, 0)
	report := executor.Apply(context.Background(), deleteOps(2))

	require.False(t, report.Failed())
	assert.Equal(t, 1, report.ChunkSize)
	assert.Equal(t, 2, report.ChunksTotal)
	assert.Equal(t, 2, report.OpsCommitted)
}

func TestChunkedExecutor_AppliesCommitTimeout(t *testing.T) {
	committer := new(MockBatchCommitter)
	var sawDeadline bool
	committer.On("CommitBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			_, sawDeadline = ctx.Deadline()
		}).
		Return(nil)

	executor := services.NewChunkedExecutor(committer, 450, 30*time.Second)
	executor.Apply(context.Background(), deleteOps(1))

	assert.True(t, sawDeadline, "each chunk commit carries its own deadline")
}
