package services

import (
	"context"

	"github.com/shopbooks/chartops/internal/core/domain"
)

// WipeSvc removes one shop and everything it owns.
type WipeSvc interface {
	// WipeShop deletes the shop's accounts, transactions, financial years,
	// templates, logs and notifications, unlinks users referencing it, and
	// finally deletes the shop document itself.
	WipeShop(ctx context.Context, shopID string) (*domain.WipeSummary, error)
}

// BackupSvc exports every logical collection to a timestamped directory.
type BackupSvc interface {
	Export(ctx context.Context, baseDir string) (*domain.BackupSummary, error)
}

// DateFixSvc normalizes legacy date strings in historical transactions.
type DateFixSvc interface {
	NormalizeTransactionDates(ctx context.Context) (*domain.DateFixSummary, error)
}
