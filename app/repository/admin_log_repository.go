package repository

import (
	"context"

	"github.com/dewatanation/admin-panel/app/models"
)

// DefaultAdminLogLimit caps how many log rows the panel shows
const DefaultAdminLogLimit = 200

type adminLogRepository struct {
	conn ConnProvider
}

func NewAdminLogRepository(conn ConnProvider) AdminLogRepository {
	return &adminLogRepository{conn: conn}
}

// Recent returns the newest log entries first
func (r *adminLogRepository) Recent(ctx context.Context, limit int) ([]models.AdminLog, error) {
	if limit <= 0 || limit > DefaultAdminLogLimit {
		limit = DefaultAdminLogLimit
	}
	db, err := r.conn.Conn(ctx)
	if err != nil {
		return nil, err
	}
	logs := make([]models.AdminLog, 0)
	err = db.Order("date DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
