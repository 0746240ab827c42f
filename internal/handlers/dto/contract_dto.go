package dto

import (
	"time"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/services"
)

// CreateContractRequest registra um arquivo já enviado (POST /contracts com JSON)
type CreateContractRequest struct {
	DealID             int64      `json:"dealId" binding:"required,gt=0" example:"1"`
	FileURL            string     `json:"fileUrl" binding:"required,file_url" example:"https://cdn.example.com/contract.pdf"`
	FileName           *string    `json:"fileName" binding:"omitempty,max=255"`
	UsageEndDate       *Timestamp `json:"usageEndDate" swaggertype:"string" format:"date-time"`
	ExclusivityEndDate *Timestamp `json:"exclusivityEndDate" swaggertype:"string" format:"date-time"`
}

// UpdateContractRequest representa o corpo de PATCH /contracts/{id}
type UpdateContractRequest struct {
	FileURL            *string    `json:"fileUrl" binding:"omitempty,file_url"`
	FileName           *string    `json:"fileName" binding:"omitempty,max=255"`
	UsageEndDate       *Timestamp `json:"usageEndDate" swaggertype:"string" format:"date-time"`
	ExclusivityEndDate *Timestamp `json:"exclusivityEndDate" swaggertype:"string" format:"date-time"`
}

// ContractResponse representa um contrato na resposta
type ContractResponse struct {
	ID                 int64      `json:"id"`
	DealID             int64      `json:"dealId"`
	FileURL            string     `json:"fileUrl"`
	FileName           *string    `json:"fileName"`
	UsageEndDate       *time.Time `json:"usageEndDate"`
	ExclusivityEndDate *time.Time `json:"exclusivityEndDate"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// ToInput converte a requisição no input do service
func (r CreateContractRequest) ToInput() services.CreateContractInput {
	return services.CreateContractInput{
		DealID:             r.DealID,
		FileURL:            r.FileURL,
		FileName:           r.FileName,
		UsageEndDate:       r.UsageEndDate.Ptr(),
		ExclusivityEndDate: r.ExclusivityEndDate.Ptr(),
	}
}

// ToChanges converte a requisição em alterações parciais
func (r UpdateContractRequest) ToChanges() entities.ContractChanges {
	return entities.ContractChanges{
		FileURL:            r.FileURL,
		FileName:           r.FileName,
		UsageEndDate:       r.UsageEndDate.Ptr(),
		ExclusivityEndDate: r.ExclusivityEndDate.Ptr(),
	}
}

// ToContractResponse converte entidade para DTO
func ToContractResponse(contract *entities.Contract) ContractResponse {
	return ContractResponse{
		ID:                 contract.ID,
		DealID:             contract.DealID,
		FileURL:            contract.FileURL,
		FileName:           contract.FileName,
		UsageEndDate:       contract.UsageEndDate,
		ExclusivityEndDate: contract.ExclusivityEndDate,
		CreatedAt:          contract.CreatedAt,
	}
}

// ToContractResponses converte uma lista de entidades
func ToContractResponses(contracts []*entities.Contract) []ContractResponse {
	result := make([]ContractResponse, len(contracts))
	for i, contract := range contracts {
		result[i] = ToContractResponse(contract)
	}
	return result
}
