// Package auth mints and validates the HS256 access tokens that carry a
// session's identity between requests.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/coderefine/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered JWT claims with the authenticated username.
type Claims struct {
	jwt.RegisteredClaims
	UserName string
}

// GenerateToken mints a signed access token for userName valid for
// validityDuration.
func GenerateToken(userName string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserName: userName,
	})

	return token.SignedString(secretKey)
}

// GetUserNameFromToken validates tokenString and returns the username it was
// minted for. Expired tokens yield common.ErrTokenExpired; any other
// validation failure yields common.ErrInvalidToken.
func GetUserNameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserName, nil
}
