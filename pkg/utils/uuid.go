package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// minúsculas e dígitos; o id compõe nomes de arquivo
const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idSize     = 8
)

// GenerateID gera um id curto e aleatório
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idSize)
}
