package ports

import (
	"context"

	"github.com/Apurer/shop-backoffice/internal/domains/auth/domain"
)

// CredentialStore looks up stored credentials. A missing user is (zero, false, nil).
type CredentialStore interface {
	Lookup(ctx context.Context, username string) (domain.Credential, bool, error)
}

// Authenticator is the injected login collaborator used by the HTTP layer.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*domain.Session, error)
	VerifyToken(ctx context.Context, token string) (domain.Identity, error)
}
