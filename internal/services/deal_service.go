package services

import (
	"context"
	"time"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/domain/ports"
	"github.com/rafabene/dealflow-backend/internal/domain/repositories"
	"github.com/rafabene/dealflow-backend/internal/domain/valueobjects"
)

// DealService contém a lógica de negócio para deals
type DealService struct {
	dealRepo     repositories.DealRepository
	contractRepo repositories.ContractRepository
	storage      ports.FileStorage
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewDealService cria um novo DealService
func NewDealService(
	dealRepo repositories.DealRepository,
	contractRepo repositories.ContractRepository,
	storage ports.FileStorage,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *DealService {
	return &DealService{
		dealRepo:     dealRepo,
		contractRepo: contractRepo,
		storage:      storage,
		uow:          uow,
		logger:       logger,
	}
}

// CreateDealInput representa os dados para criar um deal
type CreateDealInput struct {
	BrandName string
	Platform  entities.Platform
	DealValue valueobjects.Money
	Status    *entities.DealStatus // nil usa "lead"
	Deadline  *time.Time
	Notes     *string
}

// ListDeals lista os deals do usuário, mais recentes primeiro
func (s *DealService) ListDeals(ctx context.Context, userID string) ([]*entities.Deal, error) {
	return s.dealRepo.ListByUser(ctx, userID)
}

// GetDeal busca um deal do usuário; deals de terceiros são tratados como inexistentes
func (s *DealService) GetDeal(ctx context.Context, id int64, userID string) (*entities.Deal, error) {
	deal, err := s.dealRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, errors.ErrDealNotFound
	}
	return deal, nil
}

// CreateDeal valida e cria um deal para o usuário
func (s *DealService) CreateDeal(ctx context.Context, userID string, input CreateDealInput) (*entities.Deal, error) {
	status := entities.DealStatusLead
	if input.Status != nil {
		status = *input.Status
	}

	deal := &entities.Deal{
		UserID:    userID,
		BrandName: input.BrandName,
		Platform:  input.Platform,
		DealValue: input.DealValue,
		Status:    status,
		Deadline:  input.Deadline,
		Notes:     input.Notes,
	}
	if err := deal.Validate(); err != nil {
		return nil, err
	}

	if err := s.dealRepo.Create(ctx, deal); err != nil {
		return nil, err
	}

	s.logger.Info("deal created", "deal_id", deal.ID, "user_id", userID)
	return deal, nil
}

// UpdateDeal aplica uma atualização parcial
func (s *DealService) UpdateDeal(ctx context.Context, id int64, userID string, changes entities.DealChanges) (*entities.Deal, error) {
	if err := changes.Validate(); err != nil {
		return nil, err
	}

	var updated *entities.Deal
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		deal, err := s.dealRepo.Update(txCtx, id, userID, changes)
		if err != nil {
			return err
		}
		if deal == nil {
			return errors.ErrDealNotFound
		}
		updated = deal
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("deal updated", "deal_id", id, "user_id", userID)
	return updated, nil
}

// DeleteDeal remove o deal e seus dependentes; os PDFs dos contratos são apagados depois, sem bloquear
func (s *DealService) DeleteDeal(ctx context.Context, id int64, userID string) error {
	var fileURLs []string

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		deal, err := s.dealRepo.FindByIDAndUser(txCtx, id, userID)
		if err != nil {
			return err
		}
		if deal == nil {
			return errors.ErrDealNotFound
		}

		contracts, err := s.contractRepo.ListByDeal(txCtx, id)
		if err != nil {
			return err
		}
		for _, contract := range contracts {
			fileURLs = append(fileURLs, contract.FileURL)
		}

		deleted, err := s.dealRepo.Delete(txCtx, id, userID)
		if err != nil {
			return err
		}
		if !deleted {
			return errors.ErrDealNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, url := range fileURLs {
		if !s.storage.Delete(ctx, url, userID) {
			s.logger.Warn("contract file not removed from storage", "deal_id", id, "file_url", url)
		}
	}

	s.logger.Info("deal deleted", "deal_id", id, "user_id", userID, "contracts", len(fileURLs))
	return nil
}
