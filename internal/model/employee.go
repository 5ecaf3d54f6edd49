package model

type Employee struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FirstName  string    `gorm:"column:nombres;type:varchar(255);not null" json:"firstName" validate:"required,min=2"`
	LastName   string    `gorm:"column:apellidos;type:varchar(255);not null" json:"lastName" validate:"required,min=2"`
	NationalID string    `gorm:"column:cedula;type:varchar(20);not null" json:"nationalId" validate:"required,national_id"`
	Phone      string    `gorm:"column:telefono;type:varchar(20);not null" json:"phone" validate:"required,min=10"`
	BloodType  BloodType `gorm:"column:tipo_sangre;type:varchar(3);not null" json:"bloodType" validate:"required,blood_type"`
	Email      string    `gorm:"column:email;type:varchar(255);not null" json:"email" validate:"required,email"`
}

func (Employee) TableName() string { return "empleado" }
