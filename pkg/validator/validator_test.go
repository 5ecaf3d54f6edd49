package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrongPassword(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		want     bool
	}{
		{"all classes", "Sup3r$ecret!", true},
		{"exactly ten", "Abcdef12$x", true},
		{"nine chars", "Abcdef12$", false},
		{"no upper", "sup3r$ecret!", false},
		{"no lower", "SUP3R$ECRET!", false},
		{"no digit", "Super$ecret!", false},
		{"no special", "Sup3rSecret99", false},
		{"empty", "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StrongPassword(tc.password))
		})
	}
}

func TestClientPhoneFormat(t *testing.T) {
	type payload struct {
		Phone string `validate:"client_phone"`
	}
	assert.Empty(t, ValidateStruct(payload{Phone: "809-555-1234"}))
	assert.Empty(t, ValidateStruct(payload{Phone: "829-000-0000"}))
	assert.Empty(t, ValidateStruct(payload{Phone: "849-123-4567"}))
	assert.NotEmpty(t, ValidateStruct(payload{Phone: "819-555-1234"}))
	assert.NotEmpty(t, ValidateStruct(payload{Phone: "8095551234"}))
	assert.NotEmpty(t, ValidateStruct(payload{Phone: "809-555-12345"}))
}

func TestNationalIDFormat(t *testing.T) {
	type payload struct {
		NationalID string `validate:"national_id"`
	}
	assert.Empty(t, ValidateStruct(payload{NationalID: "001-1234567-8"}))
	assert.NotEmpty(t, ValidateStruct(payload{NationalID: "1-1234567-8"}))
	assert.NotEmpty(t, ValidateStruct(payload{NationalID: "00112345678"}))
}

func TestBloodTypeMembership(t *testing.T) {
	type payload struct {
		BloodType string `validate:"blood_type"`
	}
	for _, bt := range []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"} {
		assert.Empty(t, ValidateStruct(payload{BloodType: bt}), bt)
	}
	assert.NotEmpty(t, ValidateStruct(payload{BloodType: "C+"}))
	assert.NotEmpty(t, ValidateStruct(payload{BloodType: "a+"}))
}

func TestEnumTags(t *testing.T) {
	type payload struct {
		ClientType string `validate:"client_type"`
		Role       string `validate:"user_role"`
	}
	assert.Empty(t, ValidateStruct(payload{ClientType: "vip", Role: "admin"}))
	errs := ValidateStruct(payload{ClientType: "premium", Role: "root"})
	require.Len(t, errs, 2)
}

func TestValidateStructReportsFailedFields(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}
	errs := ValidateStruct(payload{})
	require.Len(t, errs, 1)
	assert.Equal(t, "required", errs[0].Tag)
}
