package repository

import (
	"errors"

	"reddybook/internal/models"

	"gorm.io/gorm"
)

// AdminRepository is the admin directory: identity id -> role.
type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// List returns directory rows newest first with their identity preloaded.
func (r *AdminRepository) List() ([]models.AdminUser, error) {
	var list []models.AdminUser
	err := r.db.Preload("Identity").Order("created_at DESC").Order("id DESC").Find(&list).Error
	return list, err
}

func (r *AdminRepository) Create(a *models.AdminUser) error {
	return r.db.Create(a).Error
}

// GetByUserID returns the directory row for an identity, or ErrNotFound.
func (r *AdminRepository) GetByUserID(userID string) (*models.AdminUser, error) {
	var a models.AdminUser
	if err := r.db.Where("user_id = ?", userID).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Delete removes only the directory row; the identity is left alone.
func (r *AdminRepository) Delete(id uint) error {
	res := r.db.Delete(&models.AdminUser{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListOrphanIdentities returns identities with no directory row.
func (r *AdminRepository) ListOrphanIdentities() ([]models.Identity, error) {
	var list []models.Identity
	err := r.db.Model(&models.Identity{}).
		Select("identities.*").
		Joins("LEFT JOIN admin_users ON admin_users.user_id = identities.id").
		Where("admin_users.id IS NULL").
		Order("identities.created_at ASC").
		Find(&list).Error
	return list, err
}
