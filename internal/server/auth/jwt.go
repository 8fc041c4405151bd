// Package auth issues and verifies the HS256 access tokens handed out on login.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/fitkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the token expiry plus the user's id and role.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
	Role   string
}

func GenerateToken(userID, role string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies tokenString against each key in turn, current key
// first, so tokens signed with a retired key stay valid until they expire.
// Expired tokens yield common.ErrTokenExpired, everything else
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKeys ...[]byte) (*Claims, error) {
	expired := false

	for _, key := range secretKeys {
		if len(key) == 0 {
			continue
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err == nil && token.Valid {
			return claims, nil
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			// signature checked out, no point trying older keys
			expired = true
			break
		}
	}

	if expired {
		return nil, common.ErrTokenExpired
	}
	return nil, common.ErrInvalidToken
}
