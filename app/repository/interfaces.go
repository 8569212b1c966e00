package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dewatanation/admin-panel/app/models"
	"github.com/dewatanation/admin-panel/internal/pkg/auth"
)

// ConnProvider hands out the current database handle. *database.Pool implements it.
type ConnProvider interface {
	Conn(ctx context.Context) (*gorm.DB, error)
}

// AccountRepository reads the gamemode accounts table
type AccountRepository interface {
	auth.CredentialStore
	GetByName(ctx context.Context, name string) (*models.Account, error)
	Exists(ctx context.Context, name string) (bool, error)
}

// AdminRepository reads the admin table
type AdminRepository interface {
	auth.AdminLookup
	GetByName(ctx context.Context, name string) (*models.Admin, error)
}

// GetcordRepository manages saved in-game positions
type GetcordRepository interface {
	List(ctx context.Context) ([]models.Getcord, error)
	Delete(ctx context.Context, id uint) error
}

// AdminLogRepository reads the admin command log
type AdminLogRepository interface {
	Recent(ctx context.Context, limit int) ([]models.AdminLog, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Account  AccountRepository
	Admin    AdminRepository
	Getcord  GetcordRepository
	AdminLog AdminLogRepository
}

// NewRepositories creates all repositories on top of one connection provider
func NewRepositories(conn ConnProvider) *Repositories {
	return &Repositories{
		Account:  NewAccountRepository(conn),
		Admin:    NewAdminRepository(conn),
		Getcord:  NewGetcordRepository(conn),
		AdminLog: NewAdminLogRepository(conn),
	}
}
