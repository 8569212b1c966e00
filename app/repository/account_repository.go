package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dewatanation/admin-panel/app/models"
	"github.com/dewatanation/admin-panel/internal/pkg/auth"
)

// accountLoginColumns are the only accounts columns the panel relies on.
var accountLoginColumns = []string{"pName", "pPassword", "pass_salt"}

// accountRepository implements the AccountRepository interface
type accountRepository struct {
	conn ConnProvider
}

// NewAccountRepository creates a new account repository instance
func NewAccountRepository(conn ConnProvider) AccountRepository {
	return &accountRepository{conn: conn}
}

// GetByName retrieves an account by its player name
func (r *accountRepository) GetByName(ctx context.Context, name string) (*models.Account, error) {
	db, err := r.conn.Conn(ctx)
	if err != nil {
		return nil, err
	}
	var account models.Account
	err = db.Select(accountLoginColumns).Where("pName = ?", name).Take(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Exists reports whether a player name is registered
func (r *accountRepository) Exists(ctx context.Context, name string) (bool, error) {
	db, err := r.conn.Conn(ctx)
	if err != nil {
		return false, err
	}
	var count int64
	err = db.Model(&models.Account{}).Where("pName = ?", name).Count(&count).Error
	return count > 0, err
}

// FindCredential returns the password hash and salt of an account
func (r *accountRepository) FindCredential(ctx context.Context, username string) (*auth.Credential, error) {
	account, err := r.GetByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrRecordNotFound
		}
		return nil, err
	}
	return &auth.Credential{
		Username:     account.Name,
		PasswordHash: account.Password,
		Salt:         account.Salt,
	}, nil
}
