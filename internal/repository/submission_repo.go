package repository

import (
	"errors"

	"reddybook/internal/models"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(s *models.Submission) error {
	return r.db.Create(s).Error
}

// List returns all submissions, newest first.
func (r *SubmissionRepository) List() ([]models.Submission, error) {
	var list []models.Submission
	err := r.db.Order("submitted_at DESC").Order("id DESC").Find(&list).Error
	return list, err
}

func (r *SubmissionRepository) GetByID(id uint) (*models.Submission, error) {
	var s models.Submission
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Submission{}).Where("id = ?", id).Update("status", status).Error
}

// DeleteByIDs removes every submission whose id is in ids and reports how many went.
func (r *SubmissionRepository) DeleteByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.Where("id IN ?", ids).Delete(&models.Submission{})
	return res.RowsAffected, res.Error
}
