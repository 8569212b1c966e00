package models

// Admin is a row of the admin table. Key is written by the game server in clear text
// unless the panel runs with ADMIN_KEY_MODE=bcrypt.
type Admin struct {
	Name  string `gorm:"column:Name;type:varchar(24);primaryKey" json:"name"`
	Key   string `gorm:"column:pAdminKey;type:varchar(128)" json:"-"`
	Level int    `gorm:"column:pAdmin;default:0" json:"level"`
}

func (Admin) TableName() string {
	return "admin"
}
