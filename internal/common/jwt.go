package common

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtSecret = []byte(os.Getenv("JWT_SECRET"))

// Family roles carried in the identity token.
const (
	RoleAdult = "adult"
	RoleChild = "child"
)

// Claims represents the verified identity data stored in a token: the user,
// the family unit that scopes every read and write, and the family role.
type Claims struct {
	UserID       uuid.UUID `json:"user_id"`
	FamilyUnitID uuid.UUID `json:"family_unit_id"`
	Role         string    `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for the given identity. Issuance endpoints live
// in the auth service; this is used by internal tooling and tests.
func GenerateToken(userID, familyUnitID uuid.UUID, role string) (string, error) {
	claims := &Claims{
		UserID:       userID,
		FamilyUnitID: familyUnitID,
		Role:         role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "timelesslove",
			Subject:   "user-auth",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(jwtSecret)
}

func ValidToken(tokenstring string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenstring, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
