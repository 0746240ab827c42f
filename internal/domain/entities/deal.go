package entities

import (
	"time"
	"unicode/utf8"

	domainerrors "github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/domain/valueobjects"
)

// Deal representa um patrocínio de marca negociado por um criador
type Deal struct {
	ID        int64
	UserID    string
	BrandName string
	Platform  Platform
	DealValue valueobjects.Money
	Status    DealStatus
	Deadline  *time.Time
	Notes     *string
	CreatedAt time.Time
}

// IsOwnedBy verifica se o deal pertence ao usuário
func (d *Deal) IsOwnedBy(userID string) bool {
	return d.UserID == userID
}

// Validate valida regras de negócio da entidade Deal
func (d *Deal) Validate() error {
	if d.UserID == "" {
		return domainerrors.NewValidationError("userId", "validation.required")
	}
	if err := validateBrandName(d.BrandName); err != nil {
		return err
	}
	if err := ValidatePlatform(string(d.Platform)); err != nil {
		return err
	}
	return ValidateDealStatus(string(d.Status))
}

// DealChanges contém os campos de uma atualização parcial; nil significa "não alterar"
type DealChanges struct {
	BrandName *string
	Platform  *Platform
	DealValue *valueobjects.Money
	Status    *DealStatus
	Deadline  *time.Time
	Notes     *string
}

// Validate revalida apenas os campos presentes, com os mesmos validadores da criação
func (c DealChanges) Validate() error {
	if c.BrandName != nil {
		if err := validateBrandName(*c.BrandName); err != nil {
			return err
		}
	}
	if c.Platform != nil {
		if err := ValidatePlatform(string(*c.Platform)); err != nil {
			return err
		}
	}
	if c.Status != nil {
		if err := ValidateDealStatus(string(*c.Status)); err != nil {
			return err
		}
	}
	return nil
}

// IsEmpty indica que nenhum campo foi informado
func (c DealChanges) IsEmpty() bool {
	return c.BrandName == nil && c.Platform == nil && c.DealValue == nil &&
		c.Status == nil && c.Deadline == nil && c.Notes == nil
}

func validateBrandName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < 1 {
		return domainerrors.NewValidationError("brandName", "validation.required")
	}
	if n > 255 {
		return domainerrors.NewValidationError("brandName", "validation.max",
			map[string]interface{}{"Max": 255})
	}
	return nil
}
