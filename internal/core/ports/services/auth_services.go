package services

import (
	"context"

	"github.com/shopbooks/chartops/internal/core/domain"
)

// Authenticator is the opaque "sign in as administrator" capability. Every
// workflow authenticates before touching the store; a rejection is fatal and
// aborts the run before any mutation is attempted.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*domain.Principal, error)
	SignOut(ctx context.Context) error
}
