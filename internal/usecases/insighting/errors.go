package insighting

import "github.com/pkg/errors"

// Erros de validação da entrada
var (
	ErrInvalidAccount = errors.New("invalid account id: expected digits or act_<digits>")
	ErrInvalidDate    = errors.New("invalid date: expected YYYY-MM-DD not in the future")
)
