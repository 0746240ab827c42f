package dto

import (
	"time"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/services"
)

// CreateReminderRequest representa o corpo de POST /reminders
type CreateReminderRequest struct {
	DealID   *int64     `json:"dealId" binding:"omitempty,gt=0"`
	Type     string     `json:"type" binding:"required,reminder_type" example:"follow_up"`
	Title    string     `json:"title" binding:"required,max=255" example:"Follow up with Acme"`
	RemindAt *Timestamp `json:"remindAt" binding:"required" swaggertype:"string" format:"date-time"`
	Sent     *bool      `json:"sent"`
}

// UpdateReminderRequest representa o corpo de PATCH /reminders/{id}
type UpdateReminderRequest struct {
	DealID   *int64     `json:"dealId" binding:"omitempty,gt=0"`
	Type     *string    `json:"type" binding:"omitempty,reminder_type"`
	Title    *string    `json:"title" binding:"omitempty,max=255"`
	RemindAt *Timestamp `json:"remindAt" swaggertype:"string" format:"date-time"`
	Sent     *bool      `json:"sent"`
}

// ReminderResponse representa um lembrete na resposta
type ReminderResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	DealID    *int64    `json:"dealId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	RemindAt  time.Time `json:"remindAt"`
	Sent      bool      `json:"sent"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToInput converte a requisição no input do service
func (r CreateReminderRequest) ToInput() services.CreateReminderInput {
	input := services.CreateReminderInput{
		DealID: r.DealID,
		Type:   entities.ReminderType(r.Type),
		Title:  r.Title,
	}
	if r.RemindAt != nil {
		input.RemindAt = r.RemindAt.Time
	}
	if r.Sent != nil {
		input.Sent = *r.Sent
	}
	return input
}

// ToChanges converte a requisição em alterações parciais
func (r UpdateReminderRequest) ToChanges() entities.ReminderChanges {
	changes := entities.ReminderChanges{
		DealID:   r.DealID,
		Title:    r.Title,
		RemindAt: r.RemindAt.Ptr(),
		Sent:     r.Sent,
	}
	if r.Type != nil {
		reminderType := entities.ReminderType(*r.Type)
		changes.Type = &reminderType
	}
	return changes
}

// ToReminderResponse converte entidade para DTO
func ToReminderResponse(reminder *entities.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:        reminder.ID,
		UserID:    reminder.UserID,
		DealID:    reminder.DealID,
		Type:      string(reminder.Type),
		Title:     reminder.Title,
		RemindAt:  reminder.RemindAt,
		Sent:      reminder.Sent,
		CreatedAt: reminder.CreatedAt,
	}
}

// ToReminderResponses converte uma lista de entidades
func ToReminderResponses(reminders []*entities.Reminder) []ReminderResponse {
	result := make([]ReminderResponse, len(reminders))
	for i, reminder := range reminders {
		result[i] = ToReminderResponse(reminder)
	}
	return result
}
