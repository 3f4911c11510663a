package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/shopbooks/chartops/internal/apperrors"
	"github.com/shopbooks/chartops/internal/core/domain"
	portsrepo "github.com/shopbooks/chartops/internal/core/ports/repositories"
)

// AccountRepository provides the snapshot reads the planner works against.
type AccountRepository struct {
	client *firestore.Client
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(client *firestore.Client) *AccountRepository {
	return &AccountRepository{client: client}
}

var _ portsrepo.AccountSnapshotReader = (*AccountRepository)(nil)

// SnapshotByShop fetches all accounts of one shop indexed by account code.
// Codes are unique only within a shop; on a duplicate the first document
// encountered wins.
func (r *AccountRepository) SnapshotByShop(ctx context.Context, shopID string) (map[string]domain.Account, error) {
	docs, err := r.client.Collection(portsrepo.CollectionAccounts).
		Where("shopId", "==", shopID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: snapshotting accounts for shop %s: %v", apperrors.ErrStoreUnavailable, shopID, err)
	}

	snapshot := make(map[string]domain.Account, len(docs))
	for _, doc := range docs {
		acct := accountFromDoc(doc.Ref.ID, doc.Data())
		if _, dup := snapshot[acct.AccountCode]; dup {
			continue
		}
		snapshot[acct.AccountCode] = acct
	}
	return snapshot, nil
}

// SnapshotAll fetches every account across all shops.
func (r *AccountRepository) SnapshotAll(ctx context.Context) ([]domain.Account, error) {
	docs, err := r.client.Collection(portsrepo.CollectionAccounts).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: snapshotting all accounts: %v", apperrors.ErrStoreUnavailable, err)
	}

	accounts := make([]domain.Account, 0, len(docs))
	for _, doc := range docs {
		accounts = append(accounts, accountFromDoc(doc.Ref.ID, doc.Data()))
	}
	return accounts, nil
}
