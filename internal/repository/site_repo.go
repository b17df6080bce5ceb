package repository

import (
	"errors"

	"reddybook/internal/models"

	"gorm.io/gorm"
)

type SiteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

// ListAll returns every site, newest first.
func (r *SiteRepository) ListAll() ([]models.ReferralSite, error) {
	var list []models.ReferralSite
	err := r.db.Order("created_at DESC").Order("id DESC").Find(&list).Error
	return list, err
}

// ListActive returns active sites in creation order.
func (r *SiteRepository) ListActive() ([]models.ReferralSite, error) {
	var list []models.ReferralSite
	err := r.db.Where("is_active = ?", true).Order("created_at ASC").Order("id ASC").Find(&list).Error
	return list, err
}

func (r *SiteRepository) GetByID(id uint) (*models.ReferralSite, error) {
	var s models.ReferralSite
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SiteRepository) Create(s *models.ReferralSite) error {
	return r.db.Create(s).Error
}

// Update overwrites the editable columns of a site. Callers check existence first;
// MySQL reports zero affected rows when nothing changed.
func (r *SiteRepository) Update(s *models.ReferralSite) error {
	return r.db.Model(&models.ReferralSite{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"name":         s.Name,
		"display_name": s.DisplayName,
		"url":          s.URL,
		"logo_url":     s.LogoURL,
		"button_color": s.ButtonColor,
	}).Error
}

func (r *SiteRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&models.ReferralSite{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *SiteRepository) Delete(id uint) error {
	res := r.db.Delete(&models.ReferralSite{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
