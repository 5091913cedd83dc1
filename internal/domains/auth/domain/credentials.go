package domain

import (
	"fmt"
	"strings"
	"time"
)

// Identity is the authenticated operator. Order logic never reads it.
type Identity struct {
	Username string
}

// Session is the result of a successful login.
type Session struct {
	Identity  Identity
	Token     string
	ExpiresAt time.Time
}

// Credential is a stored login: a username and its password hash.
type Credential struct {
	Username     string
	PasswordHash []byte
}

// PlainCredential is a configured username/password pair before hashing.
type PlainCredential struct {
	Username string
	Password string
}

// ParseCredentials reads "user:password" pairs separated by commas.
// The password is everything after the first colon.
func ParseCredentials(raw string) ([]PlainCredential, error) {
	var creds []PlainCredential
	seen := map[string]struct{}{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		username, password, ok := strings.Cut(pair, ":")
		username = strings.TrimSpace(username)
		if !ok || username == "" || password == "" {
			return nil, fmt.Errorf("credential %q must be user:password", pair)
		}
		if _, dup := seen[username]; dup {
			return nil, fmt.Errorf("credential for %q listed twice", username)
		}
		seen[username] = struct{}{}
		creds = append(creds, PlainCredential{Username: username, Password: password})
	}
	return creds, nil
}
