package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/dealflow-backend/internal/domain/entities"
	"github.com/rafabene/dealflow-backend/internal/domain/repositories"
)

// ReminderRepository implementa repositories.ReminderRepository
type ReminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository cria um novo ReminderRepository
func NewReminderRepository(db *gorm.DB) repositories.ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Create(ctx context.Context, reminder *entities.Reminder) error {
	model := r.toModel(reminder)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	reminder.ID = model.ID
	reminder.CreatedAt = model.CreatedAt
	return nil
}

func (r *ReminderRepository) FindByIDAndUser(ctx context.Context, id int64, userID string) (*entities.Reminder, error) {
	var model ReminderModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ReminderRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Reminder, error) {
	var models []*ReminderModel

	db := getDB(ctx, r.db)
	err := db.Where("user_id = ?", userID).
		Order("remind_at DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	reminders := make([]*entities.Reminder, len(models))
	for i, model := range models {
		reminders[i] = r.toEntity(model)
	}
	return reminders, nil
}

func (r *ReminderRepository) Update(ctx context.Context, id int64, userID string, changes entities.ReminderChanges) (*entities.Reminder, error) {
	db := getDB(ctx, r.db)

	if updates := r.toUpdates(changes); len(updates) > 0 {
		result := db.Model(&ReminderModel{}).
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

func (r *ReminderRepository) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	db := getDB(ctx, r.db)

	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&ReminderModel{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Conversores
func (r *ReminderRepository) toUpdates(c entities.ReminderChanges) map[string]interface{} {
	updates := map[string]interface{}{}
	if c.DealID != nil {
		updates["deal_id"] = *c.DealID
	}
	if c.Type != nil {
		updates["type"] = string(*c.Type)
	}
	if c.Title != nil {
		updates["title"] = *c.Title
	}
	if c.RemindAt != nil {
		updates["remind_at"] = c.RemindAt.UTC()
	}
	if c.Sent != nil {
		updates["sent"] = *c.Sent
	}
	return updates
}

func (r *ReminderRepository) toModel(reminder *entities.Reminder) *ReminderModel {
	return &ReminderModel{
		ID:       reminder.ID,
		UserID:   reminder.UserID,
		DealID:   reminder.DealID,
		Type:     string(reminder.Type),
		Title:    reminder.Title,
		RemindAt: reminder.RemindAt.UTC(),
		Sent:     reminder.Sent,
	}
}

func (r *ReminderRepository) toEntity(model *ReminderModel) *entities.Reminder {
	return &entities.Reminder{
		ID:        model.ID,
		UserID:    model.UserID,
		DealID:    model.DealID,
		Type:      entities.ReminderType(model.Type),
		Title:     model.Title,
		RemindAt:  model.RemindAt,
		Sent:      model.Sent,
		CreatedAt: model.CreatedAt,
	}
}
