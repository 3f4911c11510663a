package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shopbooks/chartops/internal/apperrors"
	"github.com/shopbooks/chartops/internal/core/domain"
	portsrepo "github.com/shopbooks/chartops/internal/core/ports/repositories"
)

// ShopRepository reads the shop directory and financial years.
type ShopRepository struct {
	client *firestore.Client
}

// NewShopRepository creates a new ShopRepository.
func NewShopRepository(client *firestore.Client) *ShopRepository {
	return &ShopRepository{client: client}
}

var _ portsrepo.ShopReader = (*ShopRepository)(nil)
var _ portsrepo.FinancialYearReader = (*ShopRepository)(nil)

// ListShops returns every shop record. An empty directory is an empty slice.
func (r *ShopRepository) ListShops(ctx context.Context) ([]domain.Shop, error) {
	docs, err := r.client.Collection(portsrepo.CollectionShops).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: listing shops: %v", apperrors.ErrStoreUnavailable, err)
	}

	shops := make([]domain.Shop, 0, len(docs))
	for _, doc := range docs {
		shops = append(shops, shopFromDoc(doc.Ref.ID, doc.Data()))
	}
	return shops, nil
}

// FindShopByID retrieves a single shop by document id.
func (r *ShopRepository) FindShopByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	doc, err := r.client.Collection(portsrepo.CollectionShops).Doc(shopID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("shop %s: %w", shopID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: fetching shop %s: %v", apperrors.ErrStoreUnavailable, shopID, err)
	}

	shop := shopFromDoc(doc.Ref.ID, doc.Data())
	return &shop, nil
}

// FindOpenFinancialYear returns the shop's open financial year, or
// apperrors.ErrNotFound when none is open.
func (r *ShopRepository) FindOpenFinancialYear(ctx context.Context, shopID string) (*domain.FinancialYear, error) {
	docs, err := r.client.Collection(portsrepo.CollectionFinancialYears).
		Where("shopId", "==", shopID).
		Where("status", "==", string(domain.FinancialYearOpen)).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: querying financial years for shop %s: %v", apperrors.ErrStoreUnavailable, shopID, err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("open financial year for shop %s: %w", shopID, apperrors.ErrNotFound)
	}

	fy := financialYearFromDoc(docs[0].Ref.ID, docs[0].Data())
	return &fy, nil
}
