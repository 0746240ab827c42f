package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dealflow-backend/internal/domain/ports"
	"github.com/rafabene/dealflow-backend/internal/handlers/dto"
	"github.com/rafabene/dealflow-backend/internal/services"
)

// DealHandler lida com requisições HTTP relacionadas a deals
type DealHandler struct {
	dealService     *services.DealService
	paymentService  *services.PaymentService
	contractService *services.ContractService
	logger          ports.Logger
}

// NewDealHandler cria um novo DealHandler
func NewDealHandler(
	dealService *services.DealService,
	paymentService *services.PaymentService,
	contractService *services.ContractService,
	logger ports.Logger,
) *DealHandler {
	return &DealHandler{
		dealService:     dealService,
		paymentService:  paymentService,
		contractService: contractService,
		logger:          logger,
	}
}

// ListDeals godoc
// @Summary      Lista os deals do usuário
// @Tags         deals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.DealResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /deals [get]
func (h *DealHandler) ListDeals(c *gin.Context) {
	deals, err := h.dealService.ListDeals(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDealResponses(deals))
}

// GetDeal godoc
// @Summary      Busca um deal
// @Tags         deals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Deal ID"
// @Success      200  {object}  dto.DealResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /deals/{id} [get]
func (h *DealHandler) GetDeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deal, err := h.dealService.GetDeal(c.Request.Context(), id, userID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// CreateDeal godoc
// @Summary      Cria um deal
// @Tags         deals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.CreateDealRequest  true  "Dados do deal"
// @Success      201      {object}  dto.DealResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var req dto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "dealValue")
		return
	}

	deal, err := h.dealService.CreateDeal(c.Request.Context(), userID(c), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDealResponse(deal))
}

// UpdateDeal godoc
// @Summary      Atualiza parcialmente um deal
// @Tags         deals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                    true  "Deal ID"
// @Param        request  body      dto.UpdateDealRequest  true  "Campos alterados"
// @Success      200      {object}  dto.DealResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /deals/{id} [patch]
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "dealValue")
		return
	}

	deal, err := h.dealService.UpdateDeal(c.Request.Context(), id, userID(c), req.ToChanges())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// DeleteDeal godoc
// @Summary      Remove um deal com pagamentos, contratos e lembretes
// @Tags         deals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Deal ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /deals/{id} [delete]
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.dealService.DeleteDeal(c.Request.Context(), id, userID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.deal_deleted")})
}

// ListDealPayments godoc
// @Summary      Lista os pagamentos de um deal
// @Tags         deals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Deal ID"
// @Success      200  {array}   dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /deals/{id}/payments [get]
func (h *DealHandler) ListDealPayments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPaymentsForDeal(c.Request.Context(), id, userID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// ListDealContracts godoc
// @Summary      Lista os contratos de um deal
// @Tags         deals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Deal ID"
// @Success      200  {array}   dto.ContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /deals/{id}/contracts [get]
func (h *DealHandler) ListDealContracts(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	contracts, err := h.contractService.ListContractsForDeal(c.Request.Context(), id, userID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContractResponses(contracts))
}
