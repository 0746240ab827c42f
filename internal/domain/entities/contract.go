package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "github.com/rafabene/dealflow-backend/internal/domain/errors"
)

// Contract guarda os metadados de um contrato; o PDF fica no object storage
type Contract struct {
	ID                 int64
	DealID             int64
	FileURL            string
	FileName           *string
	UsageEndDate       *time.Time
	ExclusivityEndDate *time.Time
	CreatedAt          time.Time
}

// Validate valida regras de negócio da entidade Contract
func (c *Contract) Validate() error {
	if c.DealID <= 0 {
		return domainerrors.NewValidationError("dealId", "validation.required")
	}
	if err := ValidateFileURL(c.FileURL); err != nil {
		return err
	}
	return validateFileName(c.FileName)
}

// ContractChanges contém os campos de uma atualização parcial
type ContractChanges struct {
	FileURL            *string
	FileName           *string
	UsageEndDate       *time.Time
	ExclusivityEndDate *time.Time
}

// Validate revalida os campos presentes
func (c ContractChanges) Validate() error {
	if c.FileURL != nil {
		if err := ValidateFileURL(*c.FileURL); err != nil {
			return err
		}
	}
	return validateFileName(c.FileName)
}

// IsEmpty indica que nenhum campo foi informado
func (c ContractChanges) IsEmpty() bool {
	return c.FileURL == nil && c.FileName == nil && c.UsageEndDate == nil && c.ExclusivityEndDate == nil
}

// IsValidFileURL aceita URLs absolutas http(s) ou caminhos começando com "/"
func IsValidFileURL(url string) bool {
	return strings.HasPrefix(url, "http://") ||
		strings.HasPrefix(url, "https://") ||
		strings.HasPrefix(url, "/")
}

// ValidateFileURL é o validador único de fileUrl
func ValidateFileURL(url string) error {
	if !IsValidFileURL(url) {
		return domainerrors.NewValidationError("fileUrl", "validation.file_url")
	}
	return nil
}

func validateFileName(name *string) error {
	if name != nil && utf8.RuneCountInString(*name) > 255 {
		return domainerrors.NewValidationError("fileName", "validation.max",
			map[string]interface{}{"Max": 255})
	}
	return nil
}
