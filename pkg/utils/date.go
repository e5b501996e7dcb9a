package utils

import (
	"fmt"
	"regexp"
	"time"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ParseMonth valida e interpreta uma chave de segmento mensal (YYYY-MM)
func ParseMonth(monthStr string) (time.Time, error) {
	if !monthKeyPattern.MatchString(monthStr) {
		return time.Time{}, fmt.Errorf("mês inválido: %q, esperado formato YYYY-MM", monthStr)
	}

	return time.Parse("2006-01", monthStr)
}

// IsMonthKey informa se a string tem o formato de chave de segmento mensal
func IsMonthKey(monthStr string) bool {
	return monthKeyPattern.MatchString(monthStr)
}
