// Package firestore implements the repository ports against Google Cloud
// Firestore, the hosted document store backing the accounting application.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/shopbooks/chartops/internal/apperrors"
	"github.com/shopbooks/chartops/internal/platform/config"
)

// NewClient opens a Firestore client for the configured project. A client
// that cannot be constructed is a store-unavailable condition: fatal, the
// run aborts before any read or mutation.
func NewClient(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: check that FIRESTORE_PROJECT_ID is configured: %v", apperrors.ErrStoreUnavailable, err)
	}
	return client, nil
}
