package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/repositories"
	"github.com/rafabene/dealflow-backend/internal/domain/valueobjects"
)

// DealRepository implementa repositories.DealRepository
type DealRepository struct {
	db *gorm.DB
}

// NewDealRepository cria um novo DealRepository
func NewDealRepository(db *gorm.DB) repositories.DealRepository {
	return &DealRepository{db: db}
}

func (r *DealRepository) Create(ctx context.Context, deal *entities.Deal) error {
	model := r.toModel(deal)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	deal.ID = model.ID
	deal.CreatedAt = model.CreatedAt
	return nil
}

func (r *DealRepository) FindByIDAndUser(ctx context.Context, id int64, userID string) (*entities.Deal, error) {
	var model DealModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *DealRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Deal, error) {
	var models []*DealModel

	db := getDB(ctx, r.db)
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *DealRepository) Update(ctx context.Context, id int64, userID string, changes entities.DealChanges) (*entities.Deal, error) {
	db := getDB(ctx, r.db)

	if updates := r.toUpdates(changes); len(updates) > 0 {
		// Posse e escrita no mesmo statement
		result := db.Model(&DealModel{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, nil
		}
	}

	return r.FindByIDAndUser(ctx, id, userID)
}

func (r *DealRepository) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	var deleted bool

	err := getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&DealModel{}).Select("id").Where("id = ? AND user_id = ?", id, userID)

		// Filhos primeiro: funciona com ou sem ON DELETE CASCADE no schema
		if err := tx.Where("deal_id IN (?)", owned).Delete(&PaymentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("deal_id IN (?)", owned).Delete(&ContractModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("deal_id IN (?)", owned).Delete(&ReminderModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&DealModel{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

// Conversores
func (r *DealRepository) toUpdates(c entities.DealChanges) map[string]interface{} {
	updates := map[string]interface{}{}
	if c.BrandName != nil {
		updates["brand_name"] = *c.BrandName
	}
	if c.Platform != nil {
		updates["platform"] = string(*c.Platform)
	}
	if c.DealValue != nil {
		updates["deal_value"] = c.DealValue.Decimal()
	}
	if c.Status != nil {
		updates["status"] = string(*c.Status)
	}
	if c.Deadline != nil {
		updates["deadline"] = c.Deadline.UTC()
	}
	if c.Notes != nil {
		updates["notes"] = *c.Notes
	}
	return updates
}

func (r *DealRepository) toModel(deal *entities.Deal) *DealModel {
	return &DealModel{
		ID:        deal.ID,
		UserID:    deal.UserID,
		BrandName: deal.BrandName,
		Platform:  string(deal.Platform),
		DealValue: deal.DealValue.Decimal(),
		Status:    string(deal.Status),
		Deadline:  utcPtr(deal.Deadline),
		Notes:     deal.Notes,
	}
}

func (r *DealRepository) toEntity(model *DealModel) (*entities.Deal, error) {
	value, err := valueobjects.NewMoney(model.DealValue)
	if err != nil {
		return nil, err
	}

	return &entities.Deal{
		ID:        model.ID,
		UserID:    model.UserID,
		BrandName: model.BrandName,
		Platform:  entities.Platform(model.Platform),
		DealValue: value,
		Status:    entities.DealStatus(model.Status),
		Deadline:  model.Deadline,
		Notes:     model.Notes,
		CreatedAt: model.CreatedAt,
	}, nil
}

func (r *DealRepository) toEntities(models []*DealModel) ([]*entities.Deal, error) {
	deals := make([]*entities.Deal, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		deals = append(deals, entity)
	}

	return deals, nil
}
