package utils_test

import (
	"testing"

	"github.com/igrejaapp/igreja_backend/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{"valid unformatted", "52998224725", true},
		{"valid formatted", "529.982.247-25", true},
		{"valid classic fixture", "111.444.777-35", true},
		{"wrong first check digit", "529.982.247-35", false},
		{"wrong second check digit", "529.982.247-24", false},
		{"all same digits", "111.111.111-11", false},
		{"too short", "5299822472", false},
		{"too long", "529982247255", false},
		{"empty", "", false},
		{"letters", "abc.def.ghi-jk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.IsValidCPF(tt.cpf))
		})
	}
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "529.982.247-25", utils.FormatCPF("52998224725"))
	assert.Equal(t, "529.982.247-25", utils.FormatCPF("529.982.247-25"))
	// Not 11 digits: returned unchanged.
	assert.Equal(t, "12345", utils.FormatCPF("12345"))
}

func TestIsValidCNPJ(t *testing.T) {
	tests := []struct {
		name string
		cnpj string
		want bool
	}{
		{"valid formatted", "11.222.333/0001-81", true},
		{"valid unformatted", "11222333000181", true},
		{"wrong check digit", "11.222.333/0001-82", false},
		{"all same digits", "11.111.111/1111-11", false},
		{"too short", "1122233300018", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.IsValidCNPJ(tt.cnpj))
		})
	}
}

func TestFormatCNPJ(t *testing.T) {
	assert.Equal(t, "11.222.333/0001-81", utils.FormatCNPJ("11222333000181"))
	assert.Equal(t, "123", utils.FormatCNPJ("123"))
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"JOÃO DA SILVA", "João da Silva"},
		{"maria DE souza E lima", "Maria de Souza e Lima"},
		{"  ana   clara  ", "Ana Clara"},
		{"de souza", "De Souza"}, // leading preposition is capitalized
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.NormalizeName(tt.in))
	}
}
