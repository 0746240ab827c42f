package postgres

import (
	"time"

	"gorm.io/gorm"
)

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// ownedDealIDs monta a subquery com os ids de deals do usuário
func ownedDealIDs(db *gorm.DB, userID string) *gorm.DB {
	return db.Model(&DealModel{}).Select("id").Where("user_id = ?", userID)
}
