package services

import (
	"context"
	"log/slog"
	"time"
)

// ConsistencyWaiter inserts a bounded delay after destructive batch commits
// so the store's read-after-write consistency can catch up before any
// verification read. This is a practical mitigation, not a guarantee;
// verification still tolerates and reports residual staleness.
type ConsistencyWaiter struct {
	BaseService
	wait  time.Duration
	sleep func(ctx context.Context, d time.Duration)
}

// NewConsistencyWaiter creates a waiter with the configured settle delay.
func NewConsistencyWaiter(wait time.Duration) *ConsistencyWaiter {
	return &ConsistencyWaiter{wait: wait, sleep: sleepCtx}
}

// NewConsistencyWaiterWithSleep creates a waiter with an injected sleep
// function so tests do not take real wall-clock time.
func NewConsistencyWaiterWithSleep(wait time.Duration, sleep func(ctx context.Context, d time.Duration)) *ConsistencyWaiter {
	return &ConsistencyWaiter{wait: wait, sleep: sleep}
}

// AwaitConsistency blocks for the settle delay. It is a no-op when nothing
// was committed.
func (w *ConsistencyWaiter) AwaitConsistency(ctx context.Context, afterOperationCount int) {
	if afterOperationCount == 0 || w.wait <= 0 {
		return
	}
	w.LogDebug(ctx, "Waiting for store consistency",
		slog.Duration("wait", w.wait),
		slog.Int("operations", afterOperationCount))
	w.sleep(ctx, w.wait)
}

func sleepCtx(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
