package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dewatanation/admin-panel/app/models"
	"github.com/dewatanation/admin-panel/internal/pkg/auth"
)

type adminRepository struct {
	conn ConnProvider
}

func NewAdminRepository(conn ConnProvider) AdminRepository {
	return &adminRepository{conn: conn}
}

func (r *adminRepository) GetByName(ctx context.Context, name string) (*models.Admin, error) {
	db, err := r.conn.Conn(ctx)
	if err != nil {
		return nil, err
	}
	var admin models.Admin
	err = db.Where("Name = ?", name).Take(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindAdmin(ctx context.Context, username string) (*auth.AdminRecord, error) {
	admin, err := r.GetByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrRecordNotFound
		}
		return nil, err
	}
	return &auth.AdminRecord{
		Username: admin.Name,
		Key:      admin.Key,
		Level:    admin.Level,
	}, nil
}
