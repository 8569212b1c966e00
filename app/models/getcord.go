package models

// Getcord is a position saved in-game with /getcord.
type Getcord struct {
	ID   uint    `gorm:"column:id;primaryKey" json:"id"`
	Name string  `gorm:"column:Name;type:varchar(64)" json:"Name"`
	X    float64 `gorm:"column:X" json:"X"`
	Y    float64 `gorm:"column:Y" json:"Y"`
	Z    float64 `gorm:"column:Z" json:"Z"`
	A    float64 `gorm:"column:A" json:"A"`
}

func (Getcord) TableName() string {
	return "getcord"
}
