package repositories

import (
	"context"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
)

// ReminderRepository define a interface para persistência de lembretes
type ReminderRepository interface {
	Create(ctx context.Context, reminder *entities.Reminder) error
	FindByIDAndUser(ctx context.Context, id int64, userID string) (*entities.Reminder, error)
	// ListByUser ordena por remind_at decrescente
	ListByUser(ctx context.Context, userID string) ([]*entities.Reminder, error)
	Update(ctx context.Context, id int64, userID string, changes entities.ReminderChanges) (*entities.Reminder, error)
	Delete(ctx context.Context, id int64, userID string) (bool, error)
}
