package model

type Client struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"column:nombre;type:varchar(255);not null" json:"name" validate:"required,min=2"`
	Phone      string     `gorm:"column:telefono;type:varchar(20);not null" json:"phone" validate:"required,client_phone"`
	ClientType ClientType `gorm:"column:tipo_cliente;type:varchar(10);not null" json:"clientType" validate:"required,client_type"`
}

func (Client) TableName() string { return "cliente" }
