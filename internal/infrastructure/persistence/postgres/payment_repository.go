package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/repositories"
	"github.com/rafabene/dealflow-backend/internal/domain/valueobjects"
)

// PaymentRepository implementa repositories.PaymentRepository
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository cria um novo PaymentRepository
func NewPaymentRepository(db *gorm.DB) repositories.PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	model := r.toModel(payment)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	payment.ID = model.ID
	payment.CreatedAt = model.CreatedAt
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (*entities.Payment, error) {
	var model PaymentModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *PaymentRepository) ListByDeal(ctx context.Context, dealID int64) ([]*entities.Payment, error) {
	var models []*PaymentModel

	db := getDB(ctx, r.db)
	err := db.Where("deal_id = ?", dealID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// ListByUser faz um único JOIN com deals em vez de uma query por deal
func (r *PaymentRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Payment, error) {
	var models []*PaymentModel

	db := getDB(ctx, r.db)
	err := db.Model(&PaymentModel{}).
		Select("payments.*").
		Joins("JOIN deals ON deals.id = payments.deal_id").
		Where("deals.user_id = ?", userID).
		Order("payments.created_at DESC").
		Order("payments.id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *PaymentRepository) Update(ctx context.Context, id int64, userID string, changes entities.PaymentChanges) (*entities.Payment, error) {
	db := getDB(ctx, r.db)

	if updates := r.toUpdates(changes); len(updates) > 0 {
		result := db.Model(&PaymentModel{}).
			Where("id = ? AND deal_id IN (?)", id, ownedDealIDs(db, userID)).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, nil
		}
	}

	return r.findOwned(db, id, userID)
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	db := getDB(ctx, r.db)

	result := db.Where("id = ? AND deal_id IN (?)", id, ownedDealIDs(db, userID)).Delete(&PaymentModel{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *PaymentRepository) findOwned(db *gorm.DB, id int64, userID string) (*entities.Payment, error) {
	var model PaymentModel

	err := db.Where("id = ? AND deal_id IN (?)", id, ownedDealIDs(db, userID)).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// Conversores
func (r *PaymentRepository) toUpdates(c entities.PaymentChanges) map[string]interface{} {
	updates := map[string]interface{}{}
	if c.Amount != nil {
		updates["amount"] = c.Amount.Decimal()
	}
	if c.Paid != nil {
		updates["paid"] = *c.Paid
	}
	if c.PaymentDate != nil {
		updates["payment_date"] = c.PaymentDate.UTC()
	}
	if c.Mode != nil {
		updates["mode"] = *c.Mode
	}
	return updates
}

func (r *PaymentRepository) toModel(payment *entities.Payment) *PaymentModel {
	return &PaymentModel{
		ID:          payment.ID,
		DealID:      payment.DealID,
		Amount:      payment.Amount.Decimal(),
		Paid:        payment.Paid,
		PaymentDate: utcPtr(payment.PaymentDate),
		Mode:        payment.Mode,
	}
}

func (r *PaymentRepository) toEntity(model *PaymentModel) (*entities.Payment, error) {
	amount, err := valueobjects.NewMoney(model.Amount)
	if err != nil {
		return nil, err
	}

	return &entities.Payment{
		ID:          model.ID,
		DealID:      model.DealID,
		Amount:      amount,
		Paid:        model.Paid,
		PaymentDate: model.PaymentDate,
		Mode:        model.Mode,
		CreatedAt:   model.CreatedAt,
	}, nil
}

func (r *PaymentRepository) toEntities(models []*PaymentModel) ([]*entities.Payment, error) {
	payments := make([]*entities.Payment, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		payments = append(payments, entity)
	}

	return payments, nil
}
