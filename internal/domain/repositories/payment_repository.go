package repositories

import (
	"context"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
)

// PaymentRepository define a interface para persistência de pagamentos
type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) error
	FindByID(ctx context.Context, id int64) (*entities.Payment, error)
	ListByDeal(ctx context.Context, dealID int64) ([]*entities.Payment, error)
	// ListByUser une os pagamentos de todos os deals do usuário, mais recentes primeiro
	ListByUser(ctx context.Context, userID string) ([]*entities.Payment, error)
	Update(ctx context.Context, id int64, userID string, changes entities.PaymentChanges) (*entities.Payment, error)
	Delete(ctx context.Context, id int64, userID string) (bool, error)
}
