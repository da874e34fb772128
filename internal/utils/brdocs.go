package utils

import (
	"strings"
	"unicode"
)

// onlyDigits strips every non-digit rune from s.
func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// IsValidCPF validates a Brazilian CPF, with or without formatting. Both check
// digits are verified; repeated-digit sequences like 111.111.111-11 are rejected.
func IsValidCPF(cpf string) bool {
	digits := onlyDigits(cpf)
	if len(digits) != 11 || allSameDigit(digits) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	check := 11 - (sum % 11)
	if check >= 10 {
		check = 0
	}
	if int(digits[9]-'0') != check {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	check = 11 - (sum % 11)
	if check >= 10 {
		check = 0
	}
	return int(digits[10]-'0') == check
}

// FormatCPF formats an 11-digit CPF as 000.000.000-00. Inputs that are not
// 11 digits are returned unchanged.
func FormatCPF(cpf string) string {
	digits := onlyDigits(cpf)
	if len(digits) != 11 {
		return cpf
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsValidCNPJ validates a Brazilian CNPJ, with or without formatting.
func IsValidCNPJ(cnpj string) bool {
	digits := onlyDigits(cnpj)
	if len(digits) != 14 || allSameDigit(digits) {
		return false
	}

	sum := 0
	for i, w := range cnpjWeights1 {
		sum += int(digits[i]-'0') * w
	}
	check := 0
	if sum%11 >= 2 {
		check = 11 - sum%11
	}
	if int(digits[12]-'0') != check {
		return false
	}

	sum = 0
	for i, w := range cnpjWeights2 {
		sum += int(digits[i]-'0') * w
	}
	check = 0
	if sum%11 >= 2 {
		check = 11 - sum%11
	}
	return int(digits[13]-'0') == check
}

// FormatCNPJ formats a 14-digit CNPJ as 00.000.000/0000-00. Inputs that are not
// 14 digits are returned unchanged.
func FormatCNPJ(cnpj string) string {
	digits := onlyDigits(cnpj)
	if len(digits) != 14 {
		return cnpj
	}
	return digits[:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:]
}

// namePrepositions stay lowercase when normalizing pt-BR names, except leading.
var namePrepositions = map[string]bool{
	"de": true, "da": true, "do": true, "dos": true, "das": true, "e": true,
}

// NormalizeName converts a name to title case keeping Portuguese prepositions in
// lowercase: "JOÃO DA SILVA" -> "João da Silva".
func NormalizeName(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	for i, w := range fields {
		if i > 0 && namePrepositions[w] {
			continue
		}
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}
