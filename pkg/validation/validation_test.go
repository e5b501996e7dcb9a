package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		normalized string
		valid      bool
	}{
		{
			name:       "Telefone com pontuação deve ser normalizado",
			raw:        "(555) 012-3456",
			normalized: "5550123456",
			valid:      true,
		},
		{
			name:       "Telefone com letras e pontuação deve ser limpo",
			raw:        "555-0123-456xyz",
			normalized: "5550123456",
			valid:      true,
		},
		{
			name:       "Mesmo telefone com pontuação diferente normaliza igual",
			raw:        "555.012.3456",
			normalized: "5550123456",
			valid:      true,
		},
		{
			name:       "Código de país 1 em entrada de 11 dígitos é descartado",
			raw:        "+1 (555) 012-3456",
			normalized: "5550123456",
			valid:      true,
		},
		{
			name:  "Telefone com 9 dígitos é inválido",
			raw:   "555012345",
			valid: false,
		},
		{
			name:  "Entrada de 11 dígitos sem código de país é inválida",
			raw:   "25550123456",
			valid: false,
		},
		{
			name:  "Entrada vazia é inválida",
			raw:   "",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, valid := NormalizePhone(tt.raw)
			assert.Equal(t, tt.valid, valid)
			if tt.valid {
				assert.Equal(t, tt.normalized, normalized)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		normalized string
		valid      bool
	}{
		{
			name:       "Email com maiúsculas e espaços é normalizado",
			raw:        "  Maria.Silva@Example.COM ",
			normalized: "maria.silva@example.com",
			valid:      true,
		},
		{
			name:  "Email sem arroba é inválido",
			raw:   "maria.example.com",
			valid: false,
		},
		{
			name:  "Email sem domínio com ponto é inválido",
			raw:   "maria@example",
			valid: false,
		},
		{
			name:  "Email com espaço interno é inválido",
			raw:   "maria silva@example.com",
			valid: false,
		},
		{
			name:  "Email vazio é inválido para esta função",
			raw:   "",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, valid := NormalizeEmail(tt.raw)
			assert.Equal(t, tt.valid, valid)
			if tt.valid {
				assert.Equal(t, tt.normalized, normalized)
			}
		})
	}
}
