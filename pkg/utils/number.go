package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatGrouped formata o número separando os milhares com espaço. Inteiros
// saem sem casas decimais, os demais com duas.
func FormatGrouped(d decimal.Decimal) string {
	places := int32(2)
	if d.Equal(d.Truncate(0)) {
		places = 0
	}

	return FormatGroupedFixed(d, places)
}

// FormatGroupedFixed formata com o número fixo de casas e milhares separados por espaço
func FormatGroupedFixed(d decimal.Decimal, places int32) string {
	text := d.StringFixed(places)

	sign := ""
	if strings.HasPrefix(text, "-") {
		sign = "-"
		text = text[1:]
	}

	integer, fraction, hasFraction := strings.Cut(text, ".")

	var b strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(digit)
	}

	if hasFraction {
		b.WriteByte('.')
		b.WriteString(fraction)
	}

	return sign + b.String()
}
