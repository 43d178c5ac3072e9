package authenticating

import "errors"

var (
	ErrMissingSecret   = errors.New("AUTH_SECRET não configurado")
	ErrMissingOperator = errors.New("operador é obrigatório")
	ErrInvalidToken    = errors.New("token inválido")
	ErrExpiredToken    = errors.New("token expirado")
)
