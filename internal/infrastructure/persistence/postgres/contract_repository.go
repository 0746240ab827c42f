package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/repositories"
)

// ContractRepository implementa repositories.ContractRepository
type ContractRepository struct {
	db *gorm.DB
}

// NewContractRepository cria um novo ContractRepository
func NewContractRepository(db *gorm.DB) repositories.ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) Create(ctx context.Context, contract *entities.Contract) error {
	model := r.toModel(contract)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	contract.ID = model.ID
	contract.CreatedAt = model.CreatedAt
	return nil
}

func (r *ContractRepository) FindByID(ctx context.Context, id int64) (*entities.Contract, error) {
	var model ContractModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ContractRepository) ListByDeal(ctx context.Context, dealID int64) ([]*entities.Contract, error) {
	var models []*ContractModel

	db := getDB(ctx, r.db)
	err := db.Where("deal_id = ?", dealID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *ContractRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Contract, error) {
	var models []*ContractModel

	db := getDB(ctx, r.db)
	err := db.Model(&ContractModel{}).
		Select("contracts.*").
		Joins("JOIN deals ON deals.id = contracts.deal_id").
		Where("deals.user_id = ?", userID).
		Order("contracts.created_at DESC").
		Order("contracts.id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *ContractRepository) Update(ctx context.Context, id int64, userID string, changes entities.ContractChanges) (*entities.Contract, error) {
	db := getDB(ctx, r.db)

	if updates := r.toUpdates(changes); len(updates) > 0 {
		result := db.Model(&ContractModel{}).
			Where("id = ? AND deal_id IN (?)", id, ownedDealIDs(db, userID)).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, nil
		}
	}

	var model ContractModel
	err := db.Where("id = ? AND deal_id IN (?)", id, ownedDealIDs(db, userID)).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ContractRepository) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	db := getDB(ctx, r.db)

	result := db.Where("id = ? AND deal_id IN (?)", id, ownedDealIDs(db, userID)).Delete(&ContractModel{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Conversores
func (r *ContractRepository) toUpdates(c entities.ContractChanges) map[string]interface{} {
	updates := map[string]interface{}{}
	if c.FileURL != nil {
		updates["file_url"] = *c.FileURL
	}
	if c.FileName != nil {
		updates["file_name"] = *c.FileName
	}
	if c.UsageEndDate != nil {
		updates["usage_end_date"] = c.UsageEndDate.UTC()
	}
	if c.ExclusivityEndDate != nil {
		updates["exclusivity_end_date"] = c.ExclusivityEndDate.UTC()
	}
	return updates
}

func (r *ContractRepository) toModel(contract *entities.Contract) *ContractModel {
	return &ContractModel{
		ID:                 contract.ID,
		DealID:             contract.DealID,
		FileURL:            contract.FileURL,
		FileName:           contract.FileName,
		UsageEndDate:       utcPtr(contract.UsageEndDate),
		ExclusivityEndDate: utcPtr(contract.ExclusivityEndDate),
	}
}

func (r *ContractRepository) toEntity(model *ContractModel) *entities.Contract {
	return &entities.Contract{
		ID:                 model.ID,
		DealID:             model.DealID,
		FileURL:            model.FileURL,
		FileName:           model.FileName,
		UsageEndDate:       model.UsageEndDate,
		ExclusivityEndDate: model.ExclusivityEndDate,
		CreatedAt:          model.CreatedAt,
	}
}

func (r *ContractRepository) toEntities(models []*ContractModel) []*entities.Contract {
	contracts := make([]*entities.Contract, len(models))
	for i, model := range models {
		contracts[i] = r.toEntity(model)
	}
	return contracts
}
