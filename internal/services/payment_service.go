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

// PaymentService contém a lógica de negócio para pagamentos.
// A posse é sempre resolvida pelo deal do pagamento.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	dealRepo    repositories.DealRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewPaymentService cria um novo PaymentService
func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	dealRepo repositories.DealRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		dealRepo:    dealRepo,
		uow:         uow,
		logger:      logger,
	}
}

// CreatePaymentInput representa os dados para criar um pagamento. Amount é obrigatório; zero é um valor válido.
type CreatePaymentInput struct {
	DealID      int64
	Amount      *valueobjects.Money
	Paid        bool
	PaymentDate *time.Time
	Mode        *string
}

// ListPayments lista os pagamentos de todos os deals do usuário
func (s *PaymentService) ListPayments(ctx context.Context, userID string) ([]*entities.Payment, error) {
	return s.paymentRepo.ListByUser(ctx, userID)
}

// ListPaymentsForDeal lista os pagamentos de um deal do usuário
func (s *PaymentService) ListPaymentsForDeal(ctx context.Context, dealID int64, userID string) ([]*entities.Payment, error) {
	deal, err := s.dealRepo.FindByIDAndUser(ctx, dealID, userID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, errors.ErrDealNotFound
	}
	return s.paymentRepo.ListByDeal(ctx, dealID)
}

// GetPayment busca um pagamento; 404 se não existe, 403 se o deal é de outro usuário
func (s *PaymentService) GetPayment(ctx context.Context, id int64, userID string) (*entities.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, errors.ErrPaymentNotFound
	}

	deal, err := s.dealRepo.FindByIDAndUser(ctx, payment.DealID, userID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, errors.ErrForbidden
	}
	return payment, nil
}

// CreatePayment cria um pagamento. A posse do deal é verificada por quem chama.
func (s *PaymentService) CreatePayment(ctx context.Context, input CreatePaymentInput) (*entities.Payment, error) {
	if input.Amount == nil {
		return nil, errors.NewValidationError("amount", "validation.required")
	}

	payment := &entities.Payment{
		DealID:      input.DealID,
		Amount:      *input.Amount,
		Paid:        input.Paid,
		PaymentDate: input.PaymentDate,
		Mode:        input.Mode,
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("payment created", "payment_id", payment.ID, "deal_id", payment.DealID)
	return payment, nil
}

// UpdatePayment aplica uma atualização parcial
func (s *PaymentService) UpdatePayment(ctx context.Context, id int64, userID string, changes entities.PaymentChanges) (*entities.Payment, error) {
	if err := changes.Validate(); err != nil {
		return nil, err
	}

	var updated *entities.Payment
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		payment, err := s.paymentRepo.Update(txCtx, id, userID, changes)
		if err != nil {
			return err
		}
		if payment == nil {
			return s.missingOrForbidden(txCtx, id)
		}
		updated = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment updated", "payment_id", id, "user_id", userID)
	return updated, nil
}

// DeletePayment remove um pagamento
func (s *PaymentService) DeletePayment(ctx context.Context, id int64, userID string) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		deleted, err := s.paymentRepo.Delete(txCtx, id, userID)
		if err != nil {
			return err
		}
		if !deleted {
			return s.missingOrForbidden(txCtx, id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("payment deleted", "payment_id", id, "user_id", userID)
	return nil
}

// missingOrForbidden distingue, após uma escrita sem efeito, pagamento inexistente de pagamento alheio
func (s *PaymentService) missingOrForbidden(ctx context.Context, id int64) error {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return errors.ErrPaymentNotFound
	}
	return errors.ErrForbidden
}
