package domain

import "github.com/golang-jwt/jwt/v5"

// Claims representa o token emitido pelo provedor de identidade
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}
