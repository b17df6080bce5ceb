package service

import (
	"errors"
	"strings"

	"reddybook/internal/domain"
	"reddybook/internal/models"
	"reddybook/internal/repository"
)

type SettingService struct {
	repo *repository.SettingRepository
}

func NewSettingService(repo *repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// WhatsAppNumber returns the support number, or "" when it was never set.
func (s *SettingService) WhatsAppNumber() (string, error) {
	v, err := s.repo.Get(domain.SettingWhatsApp)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	return v, err
}

func (s *SettingService) SetWhatsAppNumber(number string) (string, error) {
	number = strings.TrimSpace(number)
	if err := s.repo.Set(domain.SettingWhatsApp, number); err != nil {
		return "", err
	}
	return number, nil
}

func (s *SettingService) All() ([]models.Setting, error) {
	return s.repo.GetAll()
}
