package repositories

import (
	"context"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
)

// DealRepository define a interface para persistência de deals.
// Métodos de busca retornam (nil, nil) quando o registro não existe ou não pertence ao usuário.
type DealRepository interface {
	Create(ctx context.Context, deal *entities.Deal) error
	FindByIDAndUser(ctx context.Context, id int64, userID string) (*entities.Deal, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.Deal, error)
	// Update aplica changes com o predicado de posse na própria instrução de escrita
	Update(ctx context.Context, id int64, userID string, changes entities.DealChanges) (*entities.Deal, error)
	// Delete remove o deal e seus pagamentos, contratos e lembretes
	Delete(ctx context.Context, id int64, userID string) (bool, error)
}
