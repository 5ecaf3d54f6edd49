package model

type Buy struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	ClientID    uint `gorm:"column:cliente_id;not null" json:"clientId" validate:"required"`
	PlacementID uint `gorm:"column:colocacion_id;not null" json:"placementId" validate:"required"`
	Units       int  `gorm:"column:unidades;not null" json:"units" validate:"required,min=1"`

	Client    *Client    `gorm:"foreignKey:ClientID" json:"-"`
	Placement *Placement `gorm:"foreignKey:PlacementID" json:"-"`
}

func (Buy) TableName() string { return "compra" }
