package repo

import (
	"errors"

	"points-ledger/app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PointsRepository struct{ db *gorm.DB }

func NewPointsRepository(db *gorm.DB) *PointsRepository { return &PointsRepository{db: db} }

func (r *PointsRepository) FindByUserID(userID string) (*models.PointsRecord, error) {
	var rec models.PointsRecord
	err := r.db.Where("user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Top returns up to limit rows by total points. user_id is the secondary
// key so equal scores always list in the same order.
func (r *PointsRepository) Top(limit int) ([]models.PointsRecord, error) {
	var out []models.PointsRecord
	err := r.db.
		Order("total_points DESC").
		Order("user_id ASC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert is a single insert-or-replace statement keyed by user_id, so
// repeating a row is harmless and each row stands alone in a batch.
func (r *PointsRepository) Upsert(rec *models.PointsRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(rec).Error
}
