package repositories

import (
	"context"

	"github.com/shopbooks/chartops/internal/core/domain"
)

// ShopReader defines read operations over the shop directory.
type ShopReader interface {
	// ListShops returns every shop record. An empty directory is an empty
	// slice, not an error.
	ListShops(ctx context.Context) ([]domain.Shop, error)

	// FindShopByID retrieves a single shop by its document id.
	FindShopByID(ctx context.Context, shopID string) (*domain.Shop, error)
}

// FinancialYearReader resolves a shop's accounting periods.
type FinancialYearReader interface {
	// FindOpenFinancialYear returns the shop's open financial year, or
	// apperrors.ErrNotFound when none is open.
	FindOpenFinancialYear(ctx context.Context, shopID string) (*domain.FinancialYear, error)
}
