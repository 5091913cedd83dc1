package memory

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/Apurer/shop-backoffice/internal/domains/auth/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/auth/ports"
)

var _ ports.CredentialStore = (*CredentialStore)(nil)

// CredentialStore keeps bcrypt hashes of a static credential list.
type CredentialStore struct {
	mu    sync.RWMutex
	users map[string][]byte
}

// NewCredentialStore hashes every password once at construction; plain text is not retained.
func NewCredentialStore(creds []domain.PlainCredential, cost int) (*CredentialStore, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	store := &CredentialStore{users: make(map[string][]byte, len(creds))}
	for _, cred := range creds {
		hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", cred.Username, err)
		}
		store.users[cred.Username] = hash
	}
	return store, nil
}

func (s *CredentialStore) Lookup(_ context.Context, username string) (domain.Credential, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hash, ok := s.users[username]
	if !ok {
		return domain.Credential{}, false, nil
	}
	return domain.Credential{Username: username, PasswordHash: append([]byte(nil), hash...)}, true, nil
}
