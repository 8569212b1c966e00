package repository

import (
	"context"

	"github.com/dewatanation/admin-panel/app/models"
)

type getcordRepository struct {
	conn ConnProvider
}

func NewGetcordRepository(conn ConnProvider) GetcordRepository {
	return &getcordRepository{conn: conn}
}

// List returns every saved position ordered by id
func (r *getcordRepository) List(ctx context.Context) ([]models.Getcord, error) {
	db, err := r.conn.Conn(ctx)
	if err != nil {
		return nil, err
	}
	cords := make([]models.Getcord, 0)
	err = db.Order("id").Find(&cords).Error
	return cords, err
}

// Delete removes a position. Deleting a missing id is not an error.
func (r *getcordRepository) Delete(ctx context.Context, id uint) error {
	db, err := r.conn.Conn(ctx)
	if err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&models.Getcord{}).Error
}
