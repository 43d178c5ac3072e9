package domain

import "github.com/golang-jwt/jwt/v5"

// Escopos aceitos pela API de operação
const (
	ScopeSyncRun  = "sync:run"
	ScopeSyncRead = "sync:read"
)

// Claims identifica o operador que chama a API
type Claims struct {
	Operator string   `json:"operator"`
	Scopes   []string `json:"scopes"`
	jwt.RegisteredClaims
}

// HasScope indica se o token concede o escopo
func (c *Claims) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
