package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const passwordCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%&*"

// GeneratePassword gera uma senha aleatória forte para novos usuários
func GeneratePassword(length int) (string, error) {
	return gonanoid.Generate(passwordCharacters, length)
}
