package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/ports"
	"github.com/rafabene/dealflow-backend/internal/handlers/dto"
	"github.com/rafabene/dealflow-backend/internal/services"
)

// PaymentHandler lida com requisições HTTP relacionadas a pagamentos
type PaymentHandler struct {
	paymentService *services.PaymentService
	dealService    *services.DealService
	logger         ports.Logger
}

// NewPaymentHandler cria um novo PaymentHandler
func NewPaymentHandler(paymentService *services.PaymentService, dealService *services.DealService, logger ports.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		dealService:    dealService,
		logger:         logger,
	}
}

// ListPayments godoc
// @Summary      Lista os pagamentos do usuário, opcionalmente de um deal
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        dealId  query     int  false  "Filtra por deal"
// @Success      200     {array}   dto.PaymentResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	dealID, ok := parseOptionalID(c, "dealId", c.Query("dealId"))
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var (
		payments []*entities.Payment
		err      error
	)
	if dealID != nil {
		payments, err = h.paymentService.ListPaymentsForDeal(ctx, *dealID, userID(c))
	} else {
		payments, err = h.paymentService.ListPayments(ctx, userID(c))
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// GetPayment godoc
// @Summary      Busca um pagamento
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Payment ID"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id, userID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// CreatePayment godoc
// @Summary      Registra um pagamento em um deal do usuário
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.CreatePaymentRequest  true  "Dados do pagamento"
// @Success      201      {object}  dto.PaymentResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "amount")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.dealService.GetDeal(ctx, req.DealID, userID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	payment, err := h.paymentService.CreatePayment(ctx, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// UpdatePayment godoc
// @Summary      Atualiza parcialmente um pagamento
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                       true  "Payment ID"
// @Param        request  body      dto.UpdatePaymentRequest  true  "Campos alterados"
// @Success      200      {object}  dto.PaymentResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /payments/{id} [patch]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "amount")
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), id, userID(c), req.ToChanges())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// DeletePayment godoc
// @Summary      Remove um pagamento
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Payment ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), id, userID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.payment_deleted")})
}
