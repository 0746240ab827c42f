package http

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/ports"
	"github.com/rafabene/dealflow-backend/internal/handlers/dto"
	"github.com/rafabene/dealflow-backend/internal/infrastructure/storage"
	"github.com/rafabene/dealflow-backend/internal/services"
)

// ContractHandler lida com requisições HTTP relacionadas a contratos
type ContractHandler struct {
	contractService *services.ContractService
	dealService     *services.DealService
	logger          ports.Logger
}

// NewContractHandler cria um novo ContractHandler
func NewContractHandler(contractService *services.ContractService, dealService *services.DealService, logger ports.Logger) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
		dealService:     dealService,
		logger:          logger,
	}
}

// ListContracts godoc
// @Summary      Lista os contratos do usuário, opcionalmente de um deal
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        dealId  query     int  false  "Filtra por deal"
// @Success      200     {array}   dto.ContractResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	dealID, ok := parseOptionalID(c, "dealId", c.Query("dealId"))
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var (
		contracts []*entities.Contract
		err       error
	)
	if dealID != nil {
		contracts, err = h.contractService.ListContractsForDeal(ctx, *dealID, userID(c))
	} else {
		contracts, err = h.contractService.ListContracts(ctx, userID(c))
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContractResponses(contracts))
}

// GetContract godoc
// @Summary      Busca um contrato
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Contract ID"
// @Success      200  {object}  dto.ContractResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	contract, err := h.contractService.GetContract(c.Request.Context(), id, userID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// CreateContract godoc
// @Summary      Envia um contrato em PDF ou registra um arquivo já hospedado
// @Description  multipart/form-data com file, dealId, usageEndDate e exclusivityEndDate; ou JSON com fileUrl
// @Tags         contracts
// @Accept       mpfd,json
// @Produce      json
// @Security     BearerAuth
// @Param        file                formData  file    false  "PDF de até 10 MB"
// @Param        dealId              formData  int     false  "Deal ID"
// @Param        usageEndDate        formData  string  false  "Fim do direito de uso"
// @Param        exclusivityEndDate  formData  string  false  "Fim da exclusividade"
// @Success      201                 {object}  dto.ContractResponse
// @Failure      400                 {object}  dto.ErrorResponse
// @Failure      404                 {object}  dto.ErrorResponse
// @Router       /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		h.uploadContract(c)
		return
	}

	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.dealService.GetDeal(ctx, req.DealID, userID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	contract, err := h.contractService.CreateContract(ctx, userID(c), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToContractResponse(contract))
}

func (h *ContractHandler) uploadContract(c *gin.Context) {
	dealID, ok := parseOptionalID(c, "dealId", formValue(c, "dealId", "deal_id"))
	if !ok {
		return
	}
	if dealID == nil {
		respondFieldError(c, "dealId", "validation.required")
		return
	}

	usageEnd, ok := parseFormDate(c, "usageEndDate", "usage_end_date")
	if !ok {
		return
	}
	exclusivityEnd, ok := parseFormDate(c, "exclusivityEndDate", "exclusivity_end_date")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondFieldError(c, "file", "validation.file_missing")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer file.Close()

	// Lê um byte além do limite para que o storage rejeite arquivos grandes
	content, err := io.ReadAll(io.LimitReader(file, storage.MaxFileSize+1))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var fileName *string
	if name := filepath.Base(fileHeader.Filename); name != "." && name != "/" {
		fileName = &name
	}

	contract, err := h.contractService.UploadContract(c.Request.Context(), userID(c), services.UploadContractInput{
		DealID:             *dealID,
		FileName:           fileName,
		Content:            content,
		ContentType:        fileHeader.Header.Get("Content-Type"),
		UsageEndDate:       usageEnd,
		ExclusivityEndDate: exclusivityEnd,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToContractResponse(contract))
}

// UpdateContract godoc
// @Summary      Atualiza parcialmente os metadados de um contrato
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                        true  "Contract ID"
// @Param        request  body      dto.UpdateContractRequest  true  "Campos alterados"
// @Success      200      {object}  dto.ContractResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /contracts/{id} [patch]
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "")
		return
	}

	contract, err := h.contractService.UpdateContract(c.Request.Context(), id, userID(c), req.ToChanges())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// DeleteContract godoc
// @Summary      Remove um contrato e o arquivo no storage
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Contract ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /contracts/{id} [delete]
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.contractService.DeleteContract(c.Request.Context(), id, userID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.contract_deleted")})
}

// formValue lê o primeiro campo de formulário não vazio entre os nomes aceitos
func formValue(c *gin.Context, names ...string) string {
	for _, name := range names {
		if value := strings.TrimSpace(c.PostForm(name)); value != "" {
			return value
		}
	}
	return ""
}

func parseFormDate(c *gin.Context, field string, aliases ...string) (*time.Time, bool) {
	raw := formValue(c, append([]string{field}, aliases...)...)
	if raw == "" {
		return nil, true
	}
	t, ok := dto.ParseTimestamp(raw)
	if !ok {
		respondFieldError(c, field, "validation.invalid_date")
		return nil, false
	}
	return &t, true
}
