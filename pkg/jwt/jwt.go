package jwt

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-warehouse-api/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("missing authorization token")
)

// Claims is the signed credential payload issued at login.
type Claims struct {
	UserID     uint       `json:"id"`
	Username   string     `json:"username"`
	Role       model.Role `json:"role"`
	EmployeeID *uint      `json:"employeeId,omitempty"`
	jwt.RegisteredClaims
}

var configuredSecret []byte

// SetSecret installs the signing secret from configuration. An empty value
// clears it, falling back to the environment.
func SetSecret(secret string) {
	configuredSecret = []byte(secret)
}

// GetSecretKey returns the configured signing secret, or the environment
// value when none was installed.
func GetSecretKey() []byte {
	if len(configuredSecret) > 0 {
		return configuredSecret
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "change-me-in-production"
	}
	return []byte(secret)
}

// GenerateToken issues an 8-hour HS256 credential for the user.
func GenerateToken(u *model.User) (string, error) {
	claims := &Claims{
		UserID:     u.ID,
		Username:   u.Username,
		Role:       u.Role,
		EmployeeID: u.EmployeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(8 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "go-warehouse-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(GetSecretKey())
}

// ValidateToken parses and verifies a token string.
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return GetSecretKey(), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
