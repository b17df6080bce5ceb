package repository

import (
	"errors"

	"reddybook/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the value for key, or ErrNotFound when no row exists.
func (r *SettingRepository) Get(key string) (string, error) {
	var s models.Setting
	if err := r.db.Where(keyEq(key)).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return s.Value, nil
}

// Set inserts the key or overwrites its value.
func (r *SettingRepository) Set(key, value string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.Setting{Key: key, Value: value}).Error
}

func (r *SettingRepository) GetAll() ([]models.Setting, error) {
	var list []models.Setting
	err := r.db.Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&list).Error
	return list, err
}

// Count returns how many rows exist for key.
func (r *SettingRepository) Count(key string) (int64, error) {
	var n int64
	err := r.db.Model(&models.Setting{}).Where(keyEq(key)).Count(&n).Error
	return n, err
}

// keyEq quotes the column name; key is reserved in MySQL.
func keyEq(key string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}
