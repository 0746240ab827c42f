package services

import (
	"context"
	"time"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/domain/ports"
	"github.com/rafabene/dealflow-backend/internal/domain/repositories"
)

// ContractService contém a lógica de negócio para contratos e coordena o object storage
type ContractService struct {
	contractRepo repositories.ContractRepository
	dealRepo     repositories.DealRepository
	storage      ports.FileStorage
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewContractService cria um novo ContractService
func NewContractService(
	contractRepo repositories.ContractRepository,
	dealRepo repositories.DealRepository,
	storage ports.FileStorage,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		dealRepo:     dealRepo,
		storage:      storage,
		uow:          uow,
		logger:       logger,
	}
}

// CreateContractInput representa os metadados de um contrato já enviado ao storage
type CreateContractInput struct {
	DealID             int64
	FileURL            string
	FileName           *string
	UsageEndDate       *time.Time
	ExclusivityEndDate *time.Time
}

// UploadContractInput representa um PDF recebido via multipart
type UploadContractInput struct {
	DealID             int64
	FileName           *string
	Content            []byte
	ContentType        string
	UsageEndDate       *time.Time
	ExclusivityEndDate *time.Time
}

// ListContracts lista os contratos de todos os deals do usuário
func (s *ContractService) ListContracts(ctx context.Context, userID string) ([]*entities.Contract, error) {
	return s.contractRepo.ListByUser(ctx, userID)
}

// ListContractsForDeal lista os contratos de um deal do usuário
func (s *ContractService) ListContractsForDeal(ctx context.Context, dealID int64, userID string) ([]*entities.Contract, error) {
	if err := s.requireDeal(ctx, dealID, userID); err != nil {
		return nil, err
	}
	return s.contractRepo.ListByDeal(ctx, dealID)
}

// GetContract busca um contrato; 404 se não existe, 403 se o deal é de outro usuário
func (s *ContractService) GetContract(ctx context.Context, id int64, userID string) (*entities.Contract, error) {
	contract, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, errors.ErrContractNotFound
	}

	deal, err := s.dealRepo.FindByIDAndUser(ctx, contract.DealID, userID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, errors.ErrForbidden
	}
	return contract, nil
}

// CreateContract grava os metadados de um arquivo já enviado. A posse do deal é verificada por quem chama.
// URLs do bucket só são aceitas sob o prefixo do próprio usuário.
func (s *ContractService) CreateContract(ctx context.Context, userID string, input CreateContractInput) (*entities.Contract, error) {
	contract := &entities.Contract{
		DealID:             input.DealID,
		FileURL:            input.FileURL,
		FileName:           input.FileName,
		UsageEndDate:       input.UsageEndDate,
		ExclusivityEndDate: input.ExclusivityEndDate,
	}
	if err := contract.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkFileOwner(contract.FileURL, userID); err != nil {
		return nil, err
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}

	s.logger.Info("contract created", "contract_id", contract.ID, "deal_id", contract.DealID)
	return contract, nil
}

// UploadContract envia o PDF ao storage e cria o contrato.
// Se a gravação falhar, o arquivo enviado é removido.
func (s *ContractService) UploadContract(ctx context.Context, userID string, input UploadContractInput) (*entities.Contract, error) {
	if err := s.requireDeal(ctx, input.DealID, userID); err != nil {
		return nil, err
	}

	fileURL, err := s.storage.Upload(ctx, input.Content, input.ContentType, input.DealID, userID)
	if err != nil {
		return nil, err
	}

	contract, err := s.CreateContract(ctx, userID, CreateContractInput{
		DealID:             input.DealID,
		FileURL:            fileURL,
		FileName:           input.FileName,
		UsageEndDate:       input.UsageEndDate,
		ExclusivityEndDate: input.ExclusivityEndDate,
	})
	if err != nil {
		if !s.storage.Delete(ctx, fileURL, userID) {
			s.logger.Warn("orphan contract file left in storage", "file_url", fileURL)
		}
		return nil, err
	}

	return contract, nil
}

// UpdateContract aplica uma atualização parcial; fileUrl é revalidado quando presente
func (s *ContractService) UpdateContract(ctx context.Context, id int64, userID string, changes entities.ContractChanges) (*entities.Contract, error) {
	if err := changes.Validate(); err != nil {
		return nil, err
	}
	if changes.FileURL != nil {
		if err := s.checkFileOwner(*changes.FileURL, userID); err != nil {
			return nil, err
		}
	}

	var updated *entities.Contract
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		contract, err := s.contractRepo.Update(txCtx, id, userID, changes)
		if err != nil {
			return err
		}
		if contract == nil {
			return s.missingOrForbidden(txCtx, id)
		}
		updated = contract
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("contract updated", "contract_id", id, "user_id", userID)
	return updated, nil
}

// DeleteContract remove o contrato e depois o PDF. Falhas no storage são apenas registradas.
func (s *ContractService) DeleteContract(ctx context.Context, id int64, userID string) error {
	var fileURL string

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		contract, err := s.contractRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if contract == nil {
			return errors.ErrContractNotFound
		}

		deleted, err := s.contractRepo.Delete(txCtx, id, userID)
		if err != nil {
			return err
		}
		if !deleted {
			return s.missingOrForbidden(txCtx, id)
		}

		fileURL = contract.FileURL
		return nil
	})
	if err != nil {
		return err
	}

	if !s.storage.Delete(ctx, fileURL, userID) {
		s.logger.Warn("contract file not removed from storage", "contract_id", id, "file_url", fileURL)
	}

	s.logger.Info("contract deleted", "contract_id", id, "user_id", userID)
	return nil
}

func (s *ContractService) checkFileOwner(fileURL, userID string) error {
	if !s.storage.CanReference(fileURL, userID) {
		return errors.NewValidationError("fileUrl", "validation.file_url_owner")
	}
	return nil
}

func (s *ContractService) requireDeal(ctx context.Context, dealID int64, userID string) error {
	deal, err := s.dealRepo.FindByIDAndUser(ctx, dealID, userID)
	if err != nil {
		return err
	}
	if deal == nil {
		return errors.ErrDealNotFound
	}
	return nil
}

func (s *ContractService) missingOrForbidden(ctx context.Context, id int64) error {
	contract, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if contract == nil {
		return errors.ErrContractNotFound
	}
	return errors.ErrForbidden
}
