package model

import "golang.org/x/crypto/bcrypt"

// User is an account, optionally linked to an employee record.
// PasswordHash is never serialized.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"column:username;type:varchar(100);uniqueIndex;not null" json:"username" validate:"required,min=3"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role         Role   `gorm:"column:rol;type:varchar(10);not null" json:"role" validate:"required,user_role"`
	EmployeeID   *uint  `gorm:"column:empleado_id" json:"employeeId,omitempty"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (User) TableName() string { return "usuario" }

// SetPassword hashes and stores the given plaintext.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
