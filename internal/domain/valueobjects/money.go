package valueobjects

import (
	"bytes"
	"encoding/json"
	"regexp"

	"github.com/shopspring/decimal"

	domainerrors "github.com/rafabene/dealflow-backend/internal/domain/errors"
)

// amountPattern aceita dígitos com parte fracionária opcional de 1 ou 2 dígitos
var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// maxMoney corresponde ao limite de numeric(12,2)
var maxMoney = decimal.New(1, 10)

const (
	// maxLiteralLen limita o texto aceito antes de qualquer parse
	maxLiteralLen = 32
	// maxExponent limita o expoente decimal nos dois sentidos
	maxExponent = 20
)

// Money é um value object de ponto fixo com 2 casas decimais
type Money struct {
	value decimal.Decimal
}

// ParseMoney cria Money a partir de uma string no formato "123" ou "123.45"
func ParseMoney(s string) (Money, error) {
	if len(s) > maxLiteralLen || !amountPattern.MatchString(s) {
		return Money{}, domainerrors.ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, domainerrors.ErrInvalidAmount
	}
	return NewMoney(d)
}

// NewMoney valida um decimal: não negativo, no máximo 2 casas e dentro de numeric(12,2)
func NewMoney(d decimal.Decimal) (Money, error) {
	if exp := d.Exponent(); exp < -maxExponent || exp > maxExponent {
		return Money{}, domainerrors.ErrInvalidAmount
	}
	if d.IsNegative() || !d.Equal(d.Truncate(2)) || d.GreaterThanOrEqual(maxMoney) {
		return Money{}, domainerrors.ErrInvalidAmount
	}
	return Money{value: d}, nil
}

// MustParseMoney é usado em testes e constantes
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal retorna o valor como decimal.Decimal
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// String retorna o valor com exatamente 2 casas decimais
func (m Money) String() string {
	return m.value.StringFixed(2)
}

// Equal compara dois valores monetários
func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

// MarshalJSON serializa como string para não perder precisão no cliente
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON aceita número JSON ou string no formato de amountPattern
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || len(data) > maxLiteralLen+2 || bytes.Equal(data, []byte("null")) {
		return domainerrors.ErrInvalidAmount
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return domainerrors.ErrInvalidAmount
		}
		parsed, err := ParseMoney(s)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return domainerrors.ErrInvalidAmount
	}
	parsed, err := NewMoney(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
