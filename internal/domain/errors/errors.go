package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções ficam em internal/infrastructure/i18n/locales/*.json
var (
	ErrDealNotFound     = errors.New("error.deal_not_found")
	ErrPaymentNotFound  = errors.New("error.payment_not_found")
	ErrContractNotFound = errors.New("error.contract_not_found")
	ErrReminderNotFound = errors.New("error.reminder_not_found")
	ErrUnauthorized     = errors.New("error.unauthorized")
	ErrForbidden        = errors.New("error.forbidden")
)

// Auth errors
var (
	ErrMissingToken   = errors.New("error.missing_token")
	ErrInvalidToken   = errors.New("error.invalid_token")
	ErrMissingSubject = errors.New("error.missing_subject")
)

// Domain errors
var (
	ErrValidation    = errors.New("error.validation")
	ErrInvalidAmount = errors.New("error.invalid_amount")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional.
// Message é um message ID de i18n; Params alimenta a interpolação.
type DomainError struct {
	Type    string
	Field   string
	Message string
	Params  map[string]interface{}
	Err     error
}

func (e *DomainError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um erro de validação para um campo
func NewValidationError(field, message string, params ...map[string]interface{}) *DomainError {
	var p map[string]interface{}
	if len(params) > 0 {
		p = params[0]
	}
	return &DomainError{
		Type:    ProblemTypeValidation,
		Field:   field,
		Message: message,
		Params:  p,
		Err:     ErrValidation,
	}
}

// IsValidation verifica se err é (ou embrulha) um erro de validação
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
