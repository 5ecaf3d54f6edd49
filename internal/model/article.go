package model

type Article struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Barcode        string  `gorm:"column:codigo_barras;type:varchar(50);uniqueIndex;not null" json:"barcode" validate:"required,min=5"`
	Description    *string `gorm:"column:descripcion;type:varchar(255)" json:"description,omitempty"`
	ManufacturerID uint    `gorm:"column:fabricante_id;not null" json:"manufacturerId" validate:"required"`
	Stock          int     `gorm:"column:stock;default:0" json:"stock" validate:"min=0"`

	Manufacturer *Manufacturer `gorm:"foreignKey:ManufacturerID" json:"-"`
}

func (Article) TableName() string { return "articulo" }
