package repositories

import "context"

// Document is one raw store document: opaque id plus field data.
type Document struct {
	ID   string
	Data map[string]any
}

// CollectionReader provides untyped reads over whole collections. The backup
// export and the date-normalization sweep work on raw documents so they do
// not need a typed model for every collection they touch.
type CollectionReader interface {
	// ListAllDocuments returns every document in a collection.
	ListAllDocuments(ctx context.Context, collection string) ([]Document, error)

	// ListDocumentsByShop returns the documents in a collection whose
	// shopId field equals the given shop.
	ListDocumentsByShop(ctx context.Context, collection, shopID string) ([]Document, error)
}
