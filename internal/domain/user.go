package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são as claims do token emitido pelo provedor de autenticação externo
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID retorna o identificador do usuário (claim "sub")
func (c *Claims) UserID() string {
	return c.Subject
}
