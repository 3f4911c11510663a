package repositories

import (
	"context"

	"github.com/shopbooks/chartops/internal/core/domain"
)

// AccountSnapshotReader provides side-effect-free reads of the account state
// the planner works against.
type AccountSnapshotReader interface {
	// SnapshotByShop fetches all accounts of one shop, indexed by account
	// code. Codes are unique only within a shop; duplicates keep the first
	// document encountered.
	SnapshotByShop(ctx context.Context, shopID string) (map[string]domain.Account, error)

	// SnapshotAll fetches every account across all shops. Used by the
	// rename flow, which operates globally.
	SnapshotAll(ctx context.Context) ([]domain.Account, error)
}
