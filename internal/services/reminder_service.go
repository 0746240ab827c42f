package services

import (
	"context"
	"time"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/errors"
	"github.com/rafabene/dealflow-backend/internal/domain/ports"
	"github.com/rafabene/dealflow-backend/internal/domain/repositories"
)

// ReminderService contém a lógica de negócio para lembretes.
// A posse é verificada no próprio lembrete; o deal só é consultado quando informado.
type ReminderService struct {
	reminderRepo repositories.ReminderRepository
	dealRepo     repositories.DealRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewReminderService cria um novo ReminderService
func NewReminderService(
	reminderRepo repositories.ReminderRepository,
	dealRepo repositories.DealRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ReminderService {
	return &ReminderService{
		reminderRepo: reminderRepo,
		dealRepo:     dealRepo,
		uow:          uow,
		logger:       logger,
	}
}

// CreateReminderInput representa os dados para criar um lembrete
type CreateReminderInput struct {
	DealID   *int64
	Type     entities.ReminderType
	Title    string
	RemindAt time.Time
	Sent     bool
}

// ListReminders lista os lembretes do usuário por remindAt decrescente
func (s *ReminderService) ListReminders(ctx context.Context, userID string) ([]*entities.Reminder, error) {
	return s.reminderRepo.ListByUser(ctx, userID)
}

// GetReminder busca um lembrete do usuário
func (s *ReminderService) GetReminder(ctx context.Context, id int64, userID string) (*entities.Reminder, error) {
	reminder, err := s.reminderRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, errors.ErrReminderNotFound
	}
	return reminder, nil
}

// CreateReminder valida e cria um lembrete; dealId, quando informado, precisa ser do usuário
func (s *ReminderService) CreateReminder(ctx context.Context, userID string, input CreateReminderInput) (*entities.Reminder, error) {
	reminder := &entities.Reminder{
		UserID:   userID,
		DealID:   input.DealID,
		Type:     input.Type,
		Title:    input.Title,
		RemindAt: input.RemindAt,
		Sent:     input.Sent,
	}
	if err := reminder.Validate(); err != nil {
		return nil, err
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.requireDeal(txCtx, input.DealID, userID); err != nil {
			return err
		}
		return s.reminderRepo.Create(txCtx, reminder)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reminder created", "reminder_id", reminder.ID, "user_id", userID)
	return reminder, nil
}

// UpdateReminder aplica uma atualização parcial
func (s *ReminderService) UpdateReminder(ctx context.Context, id int64, userID string, changes entities.ReminderChanges) (*entities.Reminder, error) {
	if err := changes.Validate(); err != nil {
		return nil, err
	}

	var updated *entities.Reminder
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.requireDeal(txCtx, changes.DealID, userID); err != nil {
			return err
		}

		reminder, err := s.reminderRepo.Update(txCtx, id, userID, changes)
		if err != nil {
			return err
		}
		if reminder == nil {
			return errors.ErrReminderNotFound
		}
		updated = reminder
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reminder updated", "reminder_id", id, "user_id", userID)
	return updated, nil
}

// DeleteReminder remove um lembrete do usuário
func (s *ReminderService) DeleteReminder(ctx context.Context, id int64, userID string) error {
	deleted, err := s.reminderRepo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.ErrReminderNotFound
	}

	s.logger.Info("reminder deleted", "reminder_id", id, "user_id", userID)
	return nil
}

func (s *ReminderService) requireDeal(ctx context.Context, dealID *int64, userID string) error {
	if dealID == nil {
		return nil
	}
	deal, err := s.dealRepo.FindByIDAndUser(ctx, *dealID, userID)
	if err != nil {
		return err
	}
	if deal == nil {
		return errors.ErrDealNotFound
	}
	return nil
}
