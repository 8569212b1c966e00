package models

// Account is a row of the gamemode's accounts table. The panel only reads the
// login columns and assumes nothing about the key or any other column.
type Account struct {
	Name     string `gorm:"column:pName;type:varchar(24);uniqueIndex" json:"name"`
	Password string `gorm:"column:pPassword;type:varchar(64)" json:"-"`
	Salt     string `gorm:"column:pass_salt;type:varchar(64)" json:"-"`
}

func (Account) TableName() string {
	return "accounts"
}
