package entry

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(e *Entry) error
	FindByID(id uint) (*Entry, error)
	Delete(id uint) error
	ListRecent(userID uint, limit int) ([]Entry, error)
	ListAllRecent(limit int) ([]FeedItem, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(e *Entry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(e).Error
	})
}

// FindByID returns (nil, nil) when the entry does not exist.
func (r *GormRepository) FindByID(id uint) (*Entry, error) {
	var e Entry
	result := r.db.First(&e, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &e, nil
}

func (r *GormRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&Entry{}, id).Error
	})
}

func (r *GormRepository) ListRecent(userID uint, limit int) ([]Entry, error) {
	entries := []Entry{}
	result := r.db.Where("user_id = ?", userID).
		Order("occurred_at DESC, id DESC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

func (r *GormRepository) ListAllRecent(limit int) ([]FeedItem, error) {
	items := []FeedItem{}
	result := r.db.Table("records").
		Select("records.*, users.name").
		Joins("JOIN users ON users.id = records.user_id").
		Order("records.occurred_at DESC, records.id DESC").
		Limit(limit).
		Scan(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}
