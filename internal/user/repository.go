package user

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(u *User) error
	FindByName(name string) (*User, error)
	FindByID(id uint) (*User, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(u *User) error {
	return r.db.Create(u).Error
}

// FindByName returns (nil, nil) when no user has that exact name.
func (r *GormRepository) FindByName(name string) (*User, error) {
	var u User
	result := r.db.Where("name = ?", name).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &u, nil
}

func (r *GormRepository) FindByID(id uint) (*User, error) {
	var u User
	result := r.db.First(&u, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &u, nil
}
