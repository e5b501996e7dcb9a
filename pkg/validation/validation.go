// Package validation normaliza e valida campos brutos de entrada (telefone,
// email) antes de qualquer gravação ou busca
package validation

import (
	"regexp"
	"strings"
)

var (
	nonDigitPattern = regexp.MustCompile(`\D`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// NormalizePhone remove todos os caracteres não numéricos e descarta o
// código de país "1" quando a entrada tem 11 dígitos. Retorna o telefone
// canônico de 10 dígitos e um indicador de validade.
func NormalizePhone(raw string) (string, bool) {
	digits := nonDigitPattern.ReplaceAllString(raw, "")

	if len(digits) == 11 && strings.HasPrefix(digits, "1") {
		digits = digits[1:]
	}

	if len(digits) != 10 {
		return "", false
	}

	return digits, true
}

// NormalizeEmail remove espaços e converte para minúsculas. Email vazio é um
// estado "não informado" distinto de email inválido; a distinção é feita
// pelo chamador antes de invocar esta função.
func NormalizeEmail(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))

	if !emailPattern.MatchString(email) {
		return "", false
	}

	return email, true
}
