package dto

import (
	"time"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/valueobjects"
	"github.com/rafabene/dealflow-backend/internal/services"
)

// CreateDealRequest representa o corpo de POST /deals
type CreateDealRequest struct {
	BrandName string              `json:"brandName" binding:"required,max=255" example:"Acme"`
	Platform  string              `json:"platform" binding:"required,platform" example:"youtube"`
	DealValue *valueobjects.Money `json:"dealValue" binding:"required" swaggertype:"string" example:"1500.00"`
	Status    *string             `json:"status" binding:"omitempty,deal_status" example:"lead"`
	Deadline  *Timestamp          `json:"deadline" swaggertype:"string" format:"date-time"`
	Notes     *string             `json:"notes"`
}

// UpdateDealRequest representa o corpo de PATCH /deals/{id}; campos ausentes não são alterados
type UpdateDealRequest struct {
	BrandName *string             `json:"brandName" binding:"omitempty,max=255"`
	Platform  *string             `json:"platform" binding:"omitempty,platform"`
	DealValue *valueobjects.Money `json:"dealValue" swaggertype:"string"`
	Status    *string             `json:"status" binding:"omitempty,deal_status"`
	Deadline  *Timestamp          `json:"deadline" swaggertype:"string" format:"date-time"`
	Notes     *string             `json:"notes"`
}

// DealResponse representa um deal na resposta
type DealResponse struct {
	ID        int64              `json:"id"`
	UserID    string             `json:"userId"`
	BrandName string             `json:"brandName"`
	Platform  string             `json:"platform"`
	DealValue valueobjects.Money `json:"dealValue" swaggertype:"string" example:"1500.00"`
	Status    string             `json:"status"`
	Deadline  *time.Time         `json:"deadline"`
	Notes     *string            `json:"notes"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ToInput converte a requisição no input do service
func (r CreateDealRequest) ToInput() services.CreateDealInput {
	input := services.CreateDealInput{
		BrandName: r.BrandName,
		Platform:  entities.Platform(r.Platform),
		Deadline:  r.Deadline.Ptr(),
		Notes:     r.Notes,
	}
	if r.DealValue != nil {
		input.DealValue = *r.DealValue
	}
	if r.Status != nil {
		status := entities.DealStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// ToChanges converte a requisição em alterações parciais
func (r UpdateDealRequest) ToChanges() entities.DealChanges {
	changes := entities.DealChanges{
		BrandName: r.BrandName,
		DealValue: r.DealValue,
		Deadline:  r.Deadline.Ptr(),
		Notes:     r.Notes,
	}
	if r.Platform != nil {
		platform := entities.Platform(*r.Platform)
		changes.Platform = &platform
	}
	if r.Status != nil {
		status := entities.DealStatus(*r.Status)
		changes.Status = &status
	}
	return changes
}

// ToDealResponse converte entidade para DTO
func ToDealResponse(deal *entities.Deal) DealResponse {
	return DealResponse{
		ID:        deal.ID,
		UserID:    deal.UserID,
		BrandName: deal.BrandName,
		Platform:  string(deal.Platform),
		DealValue: deal.DealValue,
		Status:    string(deal.Status),
		Deadline:  deal.Deadline,
		Notes:     deal.Notes,
		CreatedAt: deal.CreatedAt,
	}
}

// ToDealResponses converte uma lista de entidades
func ToDealResponses(deals []*entities.Deal) []DealResponse {
	result := make([]DealResponse, len(deals))
	for i, deal := range deals {
		result[i] = ToDealResponse(deal)
	}
	return result
}
