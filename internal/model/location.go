package model

type Location struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:nombre;type:varchar(255);not null" json:"name" validate:"required"`
}

func (Location) TableName() string { return "ubicacion" }
