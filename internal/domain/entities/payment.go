package entities

import (
	"time"
	"unicode/utf8"

	domainerrors "github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/domain/valueobjects"
)

// Payment representa uma parcela recebida (ou a receber) de um deal
type Payment struct {
	ID          int64
	DealID      int64
	Amount      valueobjects.Money
	Paid        bool
	PaymentDate *time.Time
	Mode        *string
	CreatedAt   time.Time
}

// Validate valida regras de negócio da entidade Payment
func (p *Payment) Validate() error {
	if p.DealID <= 0 {
		return domainerrors.NewValidationError("dealId", "validation.required")
	}
	return validateMode(p.Mode)
}

// PaymentChanges contém os campos de uma atualização parcial
type PaymentChanges struct {
	Amount      *valueobjects.Money
	Paid        *bool
	PaymentDate *time.Time
	Mode        *string
}

// Validate revalida os campos presentes
func (c PaymentChanges) Validate() error {
	return validateMode(c.Mode)
}

// IsEmpty indica que nenhum campo foi informado
func (c PaymentChanges) IsEmpty() bool {
	return c.Amount == nil && c.Paid == nil && c.PaymentDate == nil && c.Mode == nil
}

func validateMode(mode *string) error {
	if mode != nil && utf8.RuneCountInString(*mode) > 100 {
		return domainerrors.NewValidationError("mode", "validation.max",
			map[string]interface{}{"Max": 100})
	}
	return nil
}
