package model

// Manufacturer is exposed with English field names; the persistent schema
// keeps its historical Spanish vocabulary, mapped through the column tags.
type Manufacturer struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:nombre;type:varchar(255);not null" json:"name" validate:"required"`
}

func (Manufacturer) TableName() string { return "fabricante" }
