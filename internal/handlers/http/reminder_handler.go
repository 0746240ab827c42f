package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dealflow-backend/internal/domain/ports"
	"github.com/rafabene/dealflow-backend/internal/handlers/dto"
	"github.com/rafabene/dealflow-backend/internal/services"
)

// ReminderHandler lida com requisições HTTP relacionadas a lembretes
type ReminderHandler struct {
	reminderService *services.ReminderService
	logger          ports.Logger
}

// NewReminderHandler cria um novo ReminderHandler
func NewReminderHandler(reminderService *services.ReminderService, logger ports.Logger) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		logger:          logger,
	}
}

// ListReminders godoc
// @Summary      Lista os lembretes do usuário
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ReminderResponse
// @Router       /reminders [get]
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	reminders, err := h.reminderService.ListReminders(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReminderResponses(reminders))
}

// GetReminder godoc
// @Summary      Busca um lembrete
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Reminder ID"
// @Success      200  {object}  dto.ReminderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /reminders/{id} [get]
func (h *ReminderHandler) GetReminder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	reminder, err := h.reminderService.GetReminder(c.Request.Context(), id, userID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReminderResponse(reminder))
}

// CreateReminder godoc
// @Summary      Cria um lembrete
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.CreateReminderRequest  true  "Dados do lembrete"
// @Success      201      {object}  dto.ReminderResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /reminders [post]
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "")
		return
	}

	reminder, err := h.reminderService.CreateReminder(c.Request.Context(), userID(c), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReminderResponse(reminder))
}

// UpdateReminder godoc
// @Summary      Atualiza parcialmente um lembrete
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                        true  "Reminder ID"
// @Param        request  body      dto.UpdateReminderRequest  true  "Campos alterados"
// @Success      200      {object}  dto.ReminderResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /reminders/{id} [patch]
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "")
		return
	}

	reminder, err := h.reminderService.UpdateReminder(c.Request.Context(), id, userID(c), req.ToChanges())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReminderResponse(reminder))
}

// DeleteReminder godoc
// @Summary      Remove um lembrete
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Reminder ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.reminderService.DeleteReminder(c.Request.Context(), id, userID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.reminder_deleted")})
}
