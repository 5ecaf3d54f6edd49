// Package validator wraps go-playground struct validation and registers
// the domain formats: Dominican phone numbers, cedula, blood type, client
// type, role, and the account password policy.
package validator

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string `json:"field"`
	Tag         string `json:"rule"`
	Value       string `json:"param"`
}

var (
	phoneRegex      = regexp.MustCompile(`^(809|829|849)-\d{3}-\d{4}$`)
	nationalIDRegex = regexp.MustCompile(`^\d{3}-\d{7}-\d{1}$`)
)

var validate = validator.New()

func init() {
	validate.RegisterValidation("client_phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("national_id", func(fl validator.FieldLevel) bool {
		return nationalIDRegex.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("blood_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-":
			return true
		}
		return false
	})
	validate.RegisterValidation("client_type", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "regular" || s == "vip"
	})
	validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "admin" || s == "user"
	})
}

// ValidateStruct returns one entry per failed field, nil when valid.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, &ErrorResponse{
				FailedField: fe.StructNamespace(),
				Tag:         fe.Tag(),
				Value:       fe.Param(),
			})
		}
	}
	return errs
}

// StrongPassword enforces the account password policy: at least 10
// characters with an upper, a lower, a digit, and a special character.
// RE2 has no lookahead, so the classes are checked one pass at a time.
func StrongPassword(password string) bool {
	if len(password) < 10 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}
