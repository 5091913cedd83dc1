package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Apurer/shop-backoffice/internal/domains/auth/adapters/memory"
	"github.com/Apurer/shop-backoffice/internal/domains/auth/domain"
	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
)

func newTestService(t *testing.T, now func() time.Time) *Service {
	t.Helper()
	creds, err := domain.ParseCredentials("aini:12345,john:password,jane:abc123")
	require.NoError(t, err)
	store, err := memory.NewCredentialStore(creds, bcrypt.MinCost)
	require.NoError(t, err)
	svc, err := NewService(store, []byte("test-secret"), time.Hour, WithClock(now))
	require.NoError(t, err)
	return svc
}

func TestAuthenticate_AcceptsConfiguredOperators(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestService(t, func() time.Time { return now })

	session, err := svc.Authenticate(context.Background(), "aini", "12345")
	require.NoError(t, err)
	assert.Equal(t, "aini", session.Identity.Username)
	assert.Equal(t, now.Add(time.Hour), session.ExpiresAt)

	identity, err := svc.VerifyToken(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, "aini", identity.Username)
}

func TestAuthenticate_RejectsWrongPasswordAndUnknownUser(t *testing.T) {
	svc := newTestService(t, time.Now)

	_, err := svc.Authenticate(context.Background(), "aini", "wrong")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	_, err = svc.Authenticate(context.Background(), "mallory", "12345")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestVerifyToken_RejectsExpiredAndForeignTokens(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	clock := now
	svc := newTestService(t, func() time.Time { return clock })

	session, err := svc.Authenticate(context.Background(), "john", "password")
	require.NoError(t, err)

	clock = now.Add(2 * time.Hour)
	_, err = svc.VerifyToken(context.Background(), session.Token)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	other := newTestService(t, func() time.Time { return now })
	other.secret = []byte("another-secret")
	clock = now
	_, err = other.VerifyToken(context.Background(), session.Token)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = svc.VerifyToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestNewService_RequiresSecretAndTTL(t *testing.T) {
	_, err := NewService(nil, nil, time.Hour)
	assert.Error(t, err)
	_, err = NewService(nil, []byte("s"), 0)
	assert.Error(t, err)
}
