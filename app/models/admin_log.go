package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// AdminLog is an entry the game server writes for admin commands.
type AdminLog struct {
	UserID int     `gorm:"column:user_id" json:"user_id"`
	Action string  `gorm:"column:action;type:text" json:"action"`
	Date   LogDate `gorm:"column:date" json:"date"`
}

func (AdminLog) TableName() string {
	return "admin_log"
}

// LogDate is the date column as the game server stored it. Gamemodes differ:
// DATETIME scans to a time, text is kept as written, integers are kept as is.
type LogDate struct {
	Raw any
}

func NewLogDate(t time.Time) LogDate {
	return LogDate{Raw: t}
}

func (d *LogDate) Scan(src any) error {
	switch v := src.(type) {
	case nil, time.Time, string, int64, float64:
		d.Raw = v
	case []byte:
		d.Raw = string(v)
	default:
		return fmt.Errorf("admin_log.date: unsupported column type %T", src)
	}
	return nil
}

func (d LogDate) Value() (driver.Value, error) {
	return d.Raw, nil
}

func (LogDate) GormDataType() string {
	return "datetime"
}

// MarshalJSON writes the stored value unchanged.
func (d LogDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Raw)
}
