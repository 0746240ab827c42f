package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/dealflow-backend/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// MessageResponse é o corpo das respostas de remoção
type MessageResponse struct {
	Message string `json:"message"`
}

const defaultBaseURL = "http://localhost:8000"

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return ErrorResponse{
		DefaultProblem: &problems.DefaultProblem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
	}
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro 400 com a lista de campos inválidos
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404; detailKey identifica o recurso
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeNotFound,
		"error.not_found.title",
		detailKey,
		404,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	if detailKey == "" {
		detailKey = "error.unauthorized.detail"
	}
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		detailKey,
		401,
	)
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeForbidden,
		"error.forbidden.title",
		"error.forbidden.detail",
		403,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}
