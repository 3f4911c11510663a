package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopbooks/chartops/internal/core/domain"
	portsrepo "github.com/shopbooks/chartops/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/chartops/internal/core/ports/services"
)

// wipeService removes one shop and everything it owns. Deletion cascades
// through each shop-owned collection in chunks, unlinks any user whose
// shopId points at the shop, and finally deletes the shop document.
type wipeService struct {
	BaseService
	shops       portsrepo.ShopReader
	collections portsrepo.CollectionReader
	executor    *ChunkedExecutor
	waiter      *ConsistencyWaiter
}

// NewWipeService creates the wipe service with the provided dependencies.
func NewWipeService(
	shops portsrepo.ShopReader,
	collections portsrepo.CollectionReader,
	executor *ChunkedExecutor,
	waiter *ConsistencyWaiter,
) portssvc.WipeSvc {
	return &wipeService{shops: shops, collections: collections, executor: executor, waiter: waiter}
}

var _ portssvc.WipeSvc = (*wipeService)(nil)

func (s *wipeService) WipeShop(ctx context.Context, shopID string) (*domain.WipeSummary, error) {
	// The shop must exist before anything is destroyed.
	shop, err := s.shops.FindShopByID(ctx, shopID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve shop before wipe", slog.String("shop_id", shopID))
		return nil, err
	}

	summary := &domain.WipeSummary{
		ShopID:              shop.ShopID,
		DeletedByCollection: make(map[string]int, len(portsrepo.ShopOwnedCollections)),
	}

	for _, collection := range portsrepo.ShopOwnedCollections {
		docs, err := s.collections.ListDocumentsByShop(ctx, collection, shopID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list shop documents",
				slog.String("collection", collection), slog.String("shop_id", shopID))
			return summary, err
		}

		ops := make([]portsrepo.BatchOp, 0, len(docs))
		for _, doc := range docs {
			ops = append(ops, portsrepo.BatchOp{
				Kind:       portsrepo.BatchOpDelete,
				Collection: collection,
				DocID:      doc.ID,
			})
		}

		report := s.executor.Apply(ctx, ops)
		if report.Err != nil {
			return summary, fmt.Errorf("wiping %s: %w", collection, report.Err)
		}
		summary.DeletedByCollection[collection] = report.OpsCommitted
		s.LogInfo(ctx, "Collection wiped for shop",
			slog.String("collection", collection),
			slog.Int("deleted", report.OpsCommitted))
	}

	unlinked, err := s.unlinkUsers(ctx, shopID)
	if err != nil {
		return summary, err
	}
	summary.UsersUnlinked = unlinked

	report := s.executor.Apply(ctx, []portsrepo.BatchOp{{
		Kind:       portsrepo.BatchOpDelete,
		Collection: portsrepo.CollectionShops,
		DocID:      shopID,
	}})
	if report.Err != nil {
		return summary, report.Err
	}
	summary.ShopDeleted = true

	totalDeleted := 1
	for _, n := range summary.DeletedByCollection {
		totalDeleted += n
	}
	s.waiter.AwaitConsistency(ctx, totalDeleted)

	s.LogInfo(ctx, "Shop wiped",
		slog.String("shop_id", shopID),
		slog.Int("documents_deleted", totalDeleted),
		slog.Int("users_unlinked", unlinked))
	return summary, nil
}

// unlinkUsers nulls the shopId reference on every user pointing at the shop.
func (s *wipeService) unlinkUsers(ctx context.Context, shopID string) (int, error) {
	users, err := s.collections.ListDocumentsByShop(ctx, portsrepo.CollectionUsers, shopID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users referencing shop", slog.String("shop_id", shopID))
		return 0, err
	}

	ops := make([]portsrepo.BatchOp, 0, len(users))
	for _, user := range users {
		ops = append(ops, portsrepo.BatchOp{
			Kind:       portsrepo.BatchOpUpdate,
			Collection: portsrepo.CollectionUsers,
			DocID:      user.ID,
			Updates:    map[string]any{"shopId": ""},
		})
	}

	report := s.executor.Apply(ctx, ops)
	if report.Err != nil {
		return report.OpsCommitted, fmt.Errorf("unlinking users: %w", report.Err)
	}
	return report.OpsCommitted, nil
}
