package stats

import (
	"time"

	"gorm.io/gorm"
)

// Repository yields the raw outcome codes the aggregator counts over.
type Repository interface {
	Outcomes(userID uint) ([]int, error)
	OutcomesSince(userID uint, start time.Time) ([]int, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Outcomes(userID uint) ([]int, error) {
	codes := []int{}
	result := r.db.Table("records").
		Where("user_id = ?", userID).
		Pluck("outcome", &codes)
	if result.Error != nil {
		return nil, result.Error
	}
	return codes, nil
}

func (r *GormRepository) OutcomesSince(userID uint, start time.Time) ([]int, error) {
	codes := []int{}
	result := r.db.Table("records").
		Where("user_id = ? AND occurred_at >= ?", userID, start).
		Pluck("outcome", &codes)
	if result.Error != nil {
		return nil, result.Error
	}
	return codes, nil
}
