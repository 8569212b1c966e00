package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Credential is the password data of one account.
type Credential struct {
	Username     string
	PasswordHash string
	Salt         string
}

// AdminRecord is a row of the admin table.
type AdminRecord struct {
	Username string
	Key      string
	Level    int
}

// CredentialStore looks up account credentials. A missing account is ErrRecordNotFound.
type CredentialStore interface {
	FindCredential(ctx context.Context, username string) (*Credential, error)
}

// AdminLookup looks up admin rows. A missing row is ErrRecordNotFound.
type AdminLookup interface {
	FindAdmin(ctx context.Context, username string) (*AdminRecord, error)
}

// AdminKeyStore decides whether presented is the admin key of username.
// It returns ErrNotAdmin, ErrKeyMismatch or a wrapped ErrStoreUnavailable.
type AdminKeyStore interface {
	VerifyKey(ctx context.Context, username, presented string) error
}

const (
	KeyModePlain  = "plain"
	KeyModeBcrypt = "bcrypt"
)

// NewAdminKeyStore returns the key store for mode. Unknown modes fall back to plain.
func NewAdminKeyStore(mode string, lookup AdminLookup) AdminKeyStore {
	if mode == KeyModeBcrypt {
		return NewBcryptKeyStore(lookup)
	}
	return NewPlainKeyStore(lookup)
}

// PlainKeyStore compares against keys stored in clear text, as the game server writes them.
type PlainKeyStore struct {
	lookup AdminLookup
}

func NewPlainKeyStore(lookup AdminLookup) *PlainKeyStore {
	return &PlainKeyStore{lookup: lookup}
}

func (s *PlainKeyStore) VerifyKey(ctx context.Context, username, presented string) error {
	rec, err := findAdmin(ctx, s.lookup, username)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(rec.Key), []byte(presented)) != 1 {
		return ErrKeyMismatch
	}
	return nil
}

// BcryptKeyStore expects the admin key column to hold a bcrypt hash.
type BcryptKeyStore struct {
	lookup AdminLookup
}

func NewBcryptKeyStore(lookup AdminLookup) *BcryptKeyStore {
	return &BcryptKeyStore{lookup: lookup}
}

func (s *BcryptKeyStore) VerifyKey(ctx context.Context, username, presented string) error {
	rec, err := findAdmin(ctx, s.lookup, username)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.Key), []byte(presented)) != nil {
		return ErrKeyMismatch
	}
	return nil
}

// HashAdminKey produces a value suitable for BcryptKeyStore.
func HashAdminKey(key string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	return string(b), err
}

func findAdmin(ctx context.Context, lookup AdminLookup, username string) (*AdminRecord, error) {
	rec, err := lookup.FindAdmin(ctx, username)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, ErrNotAdmin
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return rec, nil
}
