package repositories

import (
	"context"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
)

// ContractRepository define a interface para persistência de metadados de contratos
type ContractRepository interface {
	Create(ctx context.Context, contract *entities.Contract) error
	FindByID(ctx context.Context, id int64) (*entities.Contract, error)
	ListByDeal(ctx context.Context, dealID int64) ([]*entities.Contract, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.Contract, error)
	Update(ctx context.Context, id int64, userID string, changes entities.ContractChanges) (*entities.Contract, error)
	Delete(ctx context.Context, id int64, userID string) (bool, error)
}
