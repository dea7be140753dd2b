package auth

import "github.com/golang-jwt/jwt/v5"

// SessionTokenPayload captures the data available when minting a session JWT.
type SessionTokenPayload struct {
	CustomerID uint
	JTI        string
}

// SessionTokenClaims represents the typed JWT stored in the session cookie.
type SessionTokenClaims struct {
	CustomerID uint `json:"customer_id"`
	jwt.RegisteredClaims
}
