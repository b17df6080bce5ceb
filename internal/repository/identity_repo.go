package repository

import (
	"errors"
	"time"

	"reddybook/internal/models"

	"gorm.io/gorm"
)

type IdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) Create(i *models.Identity) error {
	return r.db.Create(i).Error
}

func (r *IdentityRepository) GetByID(id string) (*models.Identity, error) {
	var i models.Identity
	if err := r.db.Where("id = ?", id).First(&i).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *IdentityRepository) GetByEmail(email string) (*models.Identity, error) {
	var i models.Identity
	if err := r.db.Where("email = ?", email).First(&i).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *IdentityRepository) TouchSignIn(id string, at time.Time) error {
	return r.db.Model(&models.Identity{}).Where("id = ?", id).Update("last_sign_in_at", at).Error
}
