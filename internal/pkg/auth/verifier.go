// Package auth implements the two-step admin login: the SA-MP account
// password first, then the admin key of that same account.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dewatanation/admin-panel/internal/pkg/hashit"
)

// Verifier drives the login state machine. It holds no per-session state.
type Verifier struct {
	credentials CredentialStore
	adminKeys   AdminKeyStore
}

func NewVerifier(credentials CredentialStore, adminKeys AdminKeyStore) *Verifier {
	return &Verifier{
		credentials: credentials,
		adminKeys:   adminKeys,
	}
}

// VerifyPassword checks username/password against the account store.
// On success the session moves to PasswordVerified, dropping any earlier
// authentication. On failure current is returned unchanged.
func (v *Verifier) VerifyPassword(ctx context.Context, current State, username, password string) (State, error) {
	cred, err := v.credentials.FindCredential(ctx, username)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return current, ErrNotFound
		}
		return current, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if !hashit.Matches(cred.Salt, password, cred.PasswordHash) {
		return current, ErrMismatch
	}

	return PasswordVerified{Username: username}, nil
}

// VerifyAdminKey checks presentedKey for the username recorded in current.
func (v *Verifier) VerifyAdminKey(ctx context.Context, current State, presentedKey string) (State, error) {
	username, ok := Subject(current)
	if !ok {
		return current, ErrSessionExpired
	}

	if err := v.adminKeys.VerifyKey(ctx, username, presentedKey); err != nil {
		return current, err
	}

	return Authenticated{Username: username}, nil
}
