package model

// Placement is an article on display at a location, priced for the shelf.
type Placement struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ArticleID   uint    `gorm:"column:articulo_id;not null" json:"articleId" validate:"required"`
	LocationID  uint    `gorm:"column:ubicacion_id;not null" json:"locationId" validate:"required"`
	DisplayName string  `gorm:"column:nombre_exhibido;type:varchar(255);not null" json:"displayName" validate:"required,min=3"`
	Price       float64 `gorm:"column:precio;not null" json:"price" validate:"min=0"`

	Article  *Article  `gorm:"foreignKey:ArticleID" json:"-"`
	Location *Location `gorm:"foreignKey:LocationID" json:"-"`
}

func (Placement) TableName() string { return "colocacion" }
