package insighting

import (
	"strings"

	"github.com/shopspring/decimal"
)

// maxExponent limita a notação científica aceita; fora disso a métrica vale zero
const maxExponent = 30

var (
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// ParseMetric converte a métrica recebida da API em decimal.
// Valores nulos, vazios, inválidos ou com expoente fora de ±maxExponent valem zero.
func ParseMetric(raw *string) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}

	value := strings.TrimSpace(*raw)
	if value == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}

	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero
	}

	return d
}

// formatMoney formata valores monetários e taxas com duas casas decimais
func formatMoney(d decimal.Decimal) *string {
	s := d.StringFixed(2)
	return &s
}

// formatCount formata contadores como inteiros
func formatCount(d decimal.Decimal) *string {
	s := d.StringFixed(0)
	return &s
}

// ratio devolve num/den*scale, ou zero quando o denominador não é positivo
func ratio(num, den, scale decimal.Decimal) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Div(den).Mul(scale)
}
