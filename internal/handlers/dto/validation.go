package dto

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/errors"
)

var registerOnce sync.Once

// domainValidations delega para os mesmos validadores usados pelas entidades
var domainValidations = map[string]validator.Func{
	"platform": func(fl validator.FieldLevel) bool {
		return entities.Platform(fl.Field().String()).IsValid()
	},
	"deal_status": func(fl validator.FieldLevel) bool {
		return entities.DealStatus(fl.Field().String()).IsValid()
	},
	"reminder_type": func(fl validator.FieldLevel) bool {
		return entities.ReminderType(fl.Field().String()).IsValid()
	},
	"file_url": func(fl validator.FieldLevel) bool {
		return entities.IsValidFileURL(fl.Field().String())
	},
}

// RegisterValidators registra no validator do gin as tags de domínio
// (platform, deal_status, reminder_type, file_url) e o uso do nome JSON nos erros.
// Falhas de registro interrompem a inicialização.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("unexpected validator engine %T", binding.Validator.Engine()))
		}

		v.RegisterTagNameFunc(fieldName)

		if err := registerValidations(v, domainValidations); err != nil {
			panic(fmt.Errorf("failed to register validators: %w", err))
		}
	})
}

func registerValidations(v *validator.Validate, validations map[string]validator.Func) error {
	var errs []error
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", tag, err))
		}
	}
	return stderrors.Join(errs...)
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// ValidationErrorsFrom converte erros de binding ou de domínio em erros por campo.
// moneyField nomeia o campo monetário do corpo, já que o decoder JSON não informa qual valor falhou.
// Retorna nil quando err não é um erro de validação.
func ValidationErrorsFrom(c *gin.Context, err error, moneyField string) []ValidationError {
	var (
		fieldErrs validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		domainErr *errors.DomainError
	)

	switch {
	case stderrors.As(err, &fieldErrs):
		result := make([]ValidationError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			key, params := messageForTag(fe)
			result = append(result, ValidationError{
				Field:   fe.Field(),
				Message: T(c, key, params),
				Tag:     fe.Tag(),
			})
		}
		return result

	case stderrors.As(err, &domainErr) && errors.IsValidation(err):
		return []ValidationError{{
			Field:   domainErr.Field,
			Message: T(c, domainErr.Message, domainErr.Params),
		}}

	case stderrors.Is(err, errors.ErrInvalidAmount):
		return []ValidationError{{
			Field:   moneyField,
			Message: T(c, "validation.amount"),
			Tag:     "amount",
		}}

	case stderrors.As(err, &typeErr):
		key := "validation.invalid_type"
		if typeErr.Type == reflect.TypeOf(time.Time{}) {
			key = "validation.invalid_date"
		}
		return []ValidationError{{
			Field:   typeErr.Field,
			Message: T(c, key),
		}}

	case stderrors.As(err, &syntaxErr), stderrors.Is(err, io.EOF), stderrors.Is(err, io.ErrUnexpectedEOF):
		return []ValidationError{{
			Field:   "body",
			Message: T(c, "validation.invalid_body"),
		}}
	}

	return nil
}

func messageForTag(fe validator.FieldError) (string, map[string]interface{}) {
	switch fe.Tag() {
	case "required":
		return "validation.required", nil
	case "max":
		return "validation.max", map[string]interface{}{"Max": fe.Param()}
	case "gt", "min":
		return "validation.invalid_id", nil
	case "platform":
		return "validation.platform", map[string]interface{}{"Allowed": entities.AllowedPlatforms()}
	case "deal_status":
		return "validation.deal_status", map[string]interface{}{"Allowed": entities.AllowedDealStatuses()}
	case "reminder_type":
		return "validation.reminder_type", map[string]interface{}{"Allowed": entities.AllowedReminderTypes()}
	case "file_url":
		return "validation.file_url", nil
	default:
		return "validation.invalid_type", nil
	}
}
