package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/shopbooks/chartops/internal/apperrors"
	portsrepo "github.com/shopbooks/chartops/internal/core/ports/repositories"
)

// CollectionRepository provides the untyped collection reads used by the
// backup export, the wipe cascade and the date normalization sweep.
type CollectionRepository struct {
	client *firestore.Client
}

// NewCollectionRepository creates a new CollectionRepository.
func NewCollectionRepository(client *firestore.Client) *CollectionRepository {
	return &CollectionRepository{client: client}
}

var _ portsrepo.CollectionReader = (*CollectionRepository)(nil)

// ListAllDocuments returns every document in a collection.
func (r *CollectionRepository) ListAllDocuments(ctx context.Context, collection string) ([]portsrepo.Document, error) {
	docs, err := r.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %v", apperrors.ErrStoreUnavailable, collection, err)
	}
	return toDocuments(docs), nil
}

// ListDocumentsByShop returns the documents in a collection owned by a shop.
func (r *CollectionRepository) ListDocumentsByShop(ctx context.Context, collection, shopID string) ([]portsrepo.Document, error) {
	docs, err := r.client.Collection(collection).
		Where("shopId", "==", shopID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s for shop %s: %v", apperrors.ErrStoreUnavailable, collection, shopID, err)
	}
	return toDocuments(docs), nil
}

func toDocuments(docs []*firestore.DocumentSnapshot) []portsrepo.Document {
	out := make([]portsrepo.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, portsrepo.Document{ID: doc.Ref.ID, Data: doc.Data()})
	}
	return out
}
