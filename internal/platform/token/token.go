package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"tastebook/internal/platform/middleware"
)

// Validator verifies HMAC-signed editor tokens issued by the back-office
// identity provider.
type Validator struct {
	signingKey []byte
}

// NewValidator creates a Validator with the shared signing key.
func NewValidator(signingKey string) *Validator {
	return &Validator{signingKey: []byte(signingKey)}
}

type editorClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ValidateToken parses and verifies a token, returning the editor claims.
func (v *Validator) ValidateToken(tokenString string) (*middleware.EditorClaims, error) {
	claims := &editorClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token missing subject")
	}

	return &middleware.EditorClaims{
		EditorID: claims.Subject,
		Role:     claims.Role,
	}, nil
}
