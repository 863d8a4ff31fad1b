package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// RunIDLength é o tamanho dos identificadores curtos de execução
	RunIDLength = 6
)

// GenerateID gera um identificador curto para marcar cada análise nos logs e nas respostas
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, RunIDLength)
}
