package model

// ClientType distinguishes regular customers from VIPs.
type ClientType string

const (
	ClientRegular ClientType = "regular"
	ClientVIP     ClientType = "vip"
)

func (t ClientType) Valid() bool {
	return t == ClientRegular || t == ClientVIP
}

// BloodType is the 8-value ABO/Rh group stored on employee records.
type BloodType string

const (
	BloodAPos  BloodType = "A+"
	BloodANeg  BloodType = "A-"
	BloodBPos  BloodType = "B+"
	BloodBNeg  BloodType = "B-"
	BloodABPos BloodType = "AB+"
	BloodABNeg BloodType = "AB-"
	BloodOPos  BloodType = "O+"
	BloodONeg  BloodType = "O-"
)

func (t BloodType) Valid() bool {
	switch t {
	case BloodAPos, BloodANeg, BloodBPos, BloodBNeg, BloodABPos, BloodABNeg, BloodOPos, BloodONeg:
		return true
	}
	return false
}

// Role is the account role on a User.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}
