package http

import (
	stderrors "errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/domain/ports"
	"github.com/rafabene/dealflow-backend/internal/handlers/dto"
	"github.com/rafabene/dealflow-backend/internal/handlers/middleware"
	"github.com/rafabene/dealflow-backend/internal/infrastructure/auth"
)

var notFoundErrors = []error{
	errors.ErrDealNotFound,
	errors.ErrPaymentNotFound,
	errors.ErrContractNotFound,
	errors.ErrReminderNotFound,
}

var authErrors = []error{
	errors.ErrMissingToken,
	errors.ErrMissingSubject,
	errors.ErrInvalidToken,
}

// writeProblem responde com Content-Type application/problem+json
func writeProblem(c *gin.Context, response dto.ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(response.Status, response)
}

// RespondUnauthorized escreve o 401 usado pelo middleware de autenticação
func RespondUnauthorized(c *gin.Context, err error) {
	detailKey := ""
	for _, target := range authErrors {
		if stderrors.Is(err, target) {
			detailKey = target.Error()
			break
		}
	}
	writeProblem(c, dto.UnauthorizedErrorResponseI18n(c, detailKey))
}

// RouteNotFound responde rotas inexistentes no formato RFC 7807
func RouteNotFound(c *gin.Context) {
	writeProblem(c, dto.NotFoundErrorResponseI18n(c, "error.route_not_found"))
}

// respondError mapeia erros de domínio para status HTTP
func respondError(c *gin.Context, logger ports.Logger, err error) {
	if validationErrors := dto.ValidationErrorsFrom(c, err, ""); validationErrors != nil {
		writeProblem(c, dto.ValidationErrorResponseI18n(c, validationErrors))
		return
	}

	if auth.IsAuthError(err) || stderrors.Is(err, errors.ErrUnauthorized) {
		RespondUnauthorized(c, err)
		return
	}

	if stderrors.Is(err, errors.ErrForbidden) {
		writeProblem(c, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	for _, target := range notFoundErrors {
		if stderrors.Is(err, target) {
			writeProblem(c, dto.NotFoundErrorResponseI18n(c, target.Error()))
			return
		}
	}

	logger.Error("unexpected error", "error", err, "path", c.Request.URL.Path)
	_ = c.Error(err)
	writeProblem(c, dto.InternalErrorResponseI18n(c))
}

// respondBindError trata falhas de ShouldBindJSON; moneyField nomeia o campo monetário do corpo
func respondBindError(c *gin.Context, err error, moneyField string) {
	validationErrors := dto.ValidationErrorsFrom(c, err, moneyField)
	if validationErrors == nil {
		validationErrors = []dto.ValidationError{{
			Field:   "body",
			Message: dto.T(c, "validation.invalid_body"),
		}}
	}
	writeProblem(c, dto.ValidationErrorResponseI18n(c, validationErrors))
}

// respondFieldError responde 400 para um único campo
func respondFieldError(c *gin.Context, field, key string, params ...map[string]interface{}) {
	writeProblem(c, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{{
		Field:   field,
		Message: dto.T(c, key, params...),
	}}))
}

// parseID lê um identificador positivo do path
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		respondFieldError(c, param, "validation.invalid_id")
		return 0, false
	}
	return id, true
}

// parseOptionalID lê um identificador opcional; raw vazio resulta em nil
func parseOptionalID(c *gin.Context, field, raw string) (*int64, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondFieldError(c, field, "validation.invalid_id")
		return nil, false
	}
	return &id, true
}

// userID retorna o id do usuário autenticado
func userID(c *gin.Context) string {
	if user := middleware.CurrentUser(c); user != nil {
		return user.ID
	}
	return ""
}
