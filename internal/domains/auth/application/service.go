package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Apurer/shop-backoffice/internal/domains/auth/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/auth/ports"
	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
)

const issuer = "shop-backoffice"

// Service authenticates operators against the credential store and issues HS256 session tokens.
type Service struct {
	store  ports.CredentialStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source for token issue and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(store ports.CredentialStore, secret []byte, ttl time.Duration, opts ...Option) (*Service, error) {
	if len(secret) == 0 {
		return nil, errors.New("token secret is empty")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	s := &Service{store: store, secret: append([]byte(nil), secret...), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.Session, error) {
	username = strings.TrimSpace(username)
	cred, ok, err := s.store.Lookup(ctx, username)
	if err != nil {
		return nil, apperr.Persistence("auth.lookup", err)
	}
	if !ok {
		return nil, apperr.ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte(password)); err != nil {
		return nil, apperr.ErrUnauthenticated
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   cred.Username,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	return &domain.Session{Identity: domain.Identity{Username: cred.Username}, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *Service) VerifyToken(_ context.Context, token string) (domain.Identity, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return domain.Identity{}, apperr.ErrUnauthenticated
	}
	return domain.Identity{Username: claims.Subject}, nil
}

var _ ports.Authenticator = (*Service)(nil)
