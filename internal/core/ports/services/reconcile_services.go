package services

import (
	"context"

	"github.com/shopbooks/chartops/internal/core/domain"
)

// ReconcilerSvc runs the account-tree reconciliation workflows. Each call is
// a run-to-completion operation scoped to one shop, except the rename flow
// and the multi-shop sweep, which cover the whole directory sequentially.
type ReconcilerSvc interface {
	// EnsureComplete tops up one shop's chart to the canonical catalog.
	// Idempotent: a complete shop yields an empty plan.
	EnsureComplete(ctx context.Context, shopID string) (*domain.RunSummary, error)

	// EnsureCompleteAll runs EnsureComplete for every shop, one shop at a
	// time. A shop whose batch fails is reported and does not stop the sweep.
	EnsureCompleteAll(ctx context.Context) ([]domain.RunSummary, error)

	// ClearAndReseed deletes every account of the shop, then recreates the
	// canonical main accounts. Deletes commit before any create is attempted.
	ClearAndReseed(ctx context.Context, shopID string) (*domain.RunSummary, error)

	// ClearSubAccounts deletes every non-protected account of the shop and
	// reports preserved versus deleted counts. No removable accounts is a
	// success no-op.
	ClearSubAccounts(ctx context.Context, shopID string) (*domain.RunSummary, error)

	// RenameWithShopSuffix appends "-<shop name>" to the name and code of
	// every account not already carrying the suffix, across all shops.
	// Accounts whose shop cannot be resolved are skipped with a warning.
	RenameWithShopSuffix(ctx context.Context) (*domain.RunSummary, error)
}
