// Package auth adapts the hosted identity service to the Authenticator port.
package auth

import (
	"context"
	"fmt"

	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"github.com/shopbooks/chartops/internal/apperrors"
	"github.com/shopbooks/chartops/internal/core/domain"
	portssvc "github.com/shopbooks/chartops/internal/core/ports/services"
)

// IdentityToolkitAuthenticator verifies administrator email/password
// credentials against the Google Identity Toolkit API.
type IdentityToolkitAuthenticator struct {
	svc *identitytoolkit.Service
}

// NewIdentityToolkitAuthenticator creates an authenticator using the
// project's web API key.
func NewIdentityToolkitAuthenticator(ctx context.Context, apiKey string) (*IdentityToolkitAuthenticator, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: constructing identity client: %v", apperrors.ErrAuthenticationFailed, err)
	}
	return &IdentityToolkitAuthenticator{svc: svc}, nil
}

var _ portssvc.Authenticator = (*IdentityToolkitAuthenticator)(nil)

// SignIn verifies the credentials and returns the administrator principal.
// A rejection is fatal for the calling workflow: nothing mutates before a
// successful sign-in.
func (a *IdentityToolkitAuthenticator) SignIn(ctx context.Context, email, password string) (*domain.Principal, error) {
	resp, err := a.svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: check ADMIN_EMAIL and ADMIN_PASSWORD: %v", apperrors.ErrAuthenticationFailed, err)
	}

	return &domain.Principal{
		UserID:  resp.LocalId,
		Email:   resp.Email,
		IDToken: resp.IdToken,
	}, nil
}

// SignOut discards the session. The identity service keeps no server-side
// session for password sign-ins, so this only exists to satisfy the port.
func (a *IdentityToolkitAuthenticator) SignOut(context.Context) error {
	return nil
}
