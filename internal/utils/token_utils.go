package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeAccess and TokenTypeRefresh are the values of the custom "type"
// claim. Verification rejects a token whose type does not match the flow.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// AppClaims are the JWT claims carried by both token kinds.
type AppClaims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 JWT of the given type for userID.
func GenerateToken(userID, tokenType, secret, issuer string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := AppClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateToken parses a JWT, validates signature and standard
// claims, and checks the "type" claim matches wantType.
func ParseAndValidateToken(tokenString, secret, wantType string) (*AppClaims, error) {
	claims := &AppClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("unexpected token type %q", claims.TokenType)
	}
	return claims, nil
}
