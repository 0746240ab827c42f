package entities

import (
	"time"
	"unicode/utf8"

	domainerrors "github.com/rafabene/dealflow-backend/internal/domain/errors"
)

// Reminder é um lembrete do usuário, opcionalmente ligado a um deal.
// A posse é direta (UserID), mesmo quando DealID está presente.
type Reminder struct {
	ID        int64
	UserID    string
	DealID    *int64
	Type      ReminderType
	Title     string
	RemindAt  time.Time
	Sent      bool
	CreatedAt time.Time
}

// IsOwnedBy verifica se o lembrete pertence ao usuário
func (r *Reminder) IsOwnedBy(userID string) bool {
	return r.UserID == userID
}

// Validate valida regras de negócio da entidade Reminder
func (r *Reminder) Validate() error {
	if r.UserID == "" {
		return domainerrors.NewValidationError("userId", "validation.required")
	}
	if err := ValidateReminderType(string(r.Type)); err != nil {
		return err
	}
	if err := validateTitle(r.Title); err != nil {
		return err
	}
	if r.RemindAt.IsZero() {
		return domainerrors.NewValidationError("remindAt", "validation.required")
	}
	return nil
}

// ReminderChanges contém os campos de uma atualização parcial
type ReminderChanges struct {
	DealID   *int64
	Type     *ReminderType
	Title    *string
	RemindAt *time.Time
	Sent     *bool
}

// Validate revalida os campos presentes
func (c ReminderChanges) Validate() error {
	if c.Type != nil {
		if err := ValidateReminderType(string(*c.Type)); err != nil {
			return err
		}
	}
	if c.Title != nil {
		if err := validateTitle(*c.Title); err != nil {
			return err
		}
	}
	if c.RemindAt != nil && c.RemindAt.IsZero() {
		return domainerrors.NewValidationError("remindAt", "validation.required")
	}
	return nil
}

// IsEmpty indica que nenhum campo foi informado
func (c ReminderChanges) IsEmpty() bool {
	return c.DealID == nil && c.Type == nil && c.Title == nil && c.RemindAt == nil && c.Sent == nil
}

func validateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < 1 {
		return domainerrors.NewValidationError("title", "validation.required")
	}
	if n > 255 {
		return domainerrors.NewValidationError("title", "validation.max",
			map[string]interface{}{"Max": 255})
	}
	return nil
}
