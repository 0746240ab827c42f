package dto

import (
	"time"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/valueobjects"
	"github.com/rafabene/dealflow-backend/internal/services"
)

// CreatePaymentRequest representa o corpo de POST /payments.
// amount aceita número JSON ou string "123.45".
type CreatePaymentRequest struct {
	DealID      int64               `json:"dealId" binding:"required,gt=0" example:"1"`
	Amount      *valueobjects.Money `json:"amount" binding:"required" swaggertype:"string" example:"500.00"`
	Paid        *bool               `json:"paid"`
	PaymentDate *Timestamp          `json:"paymentDate" swaggertype:"string" format:"date-time"`
	Mode        *string             `json:"mode" binding:"omitempty,max=100" example:"pix"`
}

// UpdatePaymentRequest representa o corpo de PATCH /payments/{id}
type UpdatePaymentRequest struct {
	Amount      *valueobjects.Money `json:"amount" swaggertype:"string"`
	Paid        *bool               `json:"paid"`
	PaymentDate *Timestamp          `json:"paymentDate" swaggertype:"string" format:"date-time"`
	Mode        *string             `json:"mode" binding:"omitempty,max=100"`
}

// PaymentResponse representa um pagamento na resposta
type PaymentResponse struct {
	ID          int64              `json:"id"`
	DealID      int64              `json:"dealId"`
	Amount      valueobjects.Money `json:"amount" swaggertype:"string" example:"500.00"`
	Paid        bool               `json:"paid"`
	PaymentDate *time.Time         `json:"paymentDate"`
	Mode        *string            `json:"mode"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToInput converte a requisição no input do service
func (r CreatePaymentRequest) ToInput() services.CreatePaymentInput {
	input := services.CreatePaymentInput{
		DealID:      r.DealID,
		Amount:      r.Amount,
		PaymentDate: r.PaymentDate.Ptr(),
		Mode:        r.Mode,
	}
	if r.Paid != nil {
		input.Paid = *r.Paid
	}
	return input
}

// ToChanges converte a requisição em alterações parciais
func (r UpdatePaymentRequest) ToChanges() entities.PaymentChanges {
	return entities.PaymentChanges{
		Amount:      r.Amount,
		Paid:        r.Paid,
		PaymentDate: r.PaymentDate.Ptr(),
		Mode:        r.Mode,
	}
}

// ToPaymentResponse converte entidade para DTO
func ToPaymentResponse(payment *entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          payment.ID,
		DealID:      payment.DealID,
		Amount:      payment.Amount,
		Paid:        payment.Paid,
		PaymentDate: payment.PaymentDate,
		Mode:        payment.Mode,
		CreatedAt:   payment.CreatedAt,
	}
}

// ToPaymentResponses converte uma lista de entidades
func ToPaymentResponses(payments []*entities.Payment) []PaymentResponse {
	result := make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		result[i] = ToPaymentResponse(payment)
	}
	return result
}
