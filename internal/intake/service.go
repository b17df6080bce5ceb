package intake

import (
	"errors"
	"strings"
	"time"

	"reddybook/internal/domain"
	"reddybook/internal/models"
	"reddybook/pkg/whatsapp"

	"go.uber.org/zap"
)

var ErrUnknownSite = errors.New("please select a valid website")

type SiteLister interface {
	ListActive() ([]models.ReferralSite, error)
}

type Ledger interface {
	Create(sub *models.Submission) error
}

// NumberSource provides the support WhatsApp number the deep link opens.
type NumberSource interface {
	WhatsAppNumber() (string, error)
}

type Service struct {
	sites       SiteLister
	ledger      Ledger
	numbers     NumberSource
	countryCode string
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(sites SiteLister, ledger Ledger, numbers NumberSource, countryCode string, logger *zap.Logger) *Service {
	return &Service{sites: sites, ledger: ledger, numbers: numbers, countryCode: countryCode, logger: logger, now: time.Now}
}

// Sites returns the active sites oldest first. When the registry fails the
// fixed fallback list is returned and fallback is true.
func (s *Service) Sites() (sites []models.ReferralSite, fallback bool) {
	list, err := s.sites.ListActive()
	if err != nil {
		s.logger.Error("failed to load referral sites, using fallback", zap.Error(err))
		return FallbackSites(), true
	}
	return list, false
}

// FindSite matches a visitor's choice against the offered sites by display
// name or name.
func (s *Service) FindSite(choice string) (*models.ReferralSite, bool) {
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return nil, false
	}
	sites, _ := s.Sites()
	for i := range sites {
		if sites[i].DisplayName == choice || sites[i].Name == choice {
			return &sites[i], true
		}
	}
	return nil, false
}

// Commit records the lead and returns the WhatsApp link for it. The flow is
// reset only after the submission is stored; on error it stays on the site step.
func (s *Service) Commit(f *Flow, site *models.ReferralSite) (string, error) {
	if f.Step != StepSite {
		return "", ErrNotReady
	}
	if site == nil {
		return "", ErrUnknownSite
	}
	status := domain.SubmissionPending
	sub := &models.Submission{
		Name:            strings.TrimSpace(f.Name),
		MobileNumber:    f.Mobile,
		SelectedWebsite: site.Label(),
		Status:          &status,
		SubmittedAt:     s.now(),
	}
	if err := s.ledger.Create(sub); err != nil {
		return "", err
	}

	number, err := s.numbers.WhatsAppNumber()
	if err != nil {
		s.logger.Error("failed to load whatsapp number", zap.Error(err))
	}
	link := whatsapp.Link(number, whatsapp.IntakeMessage(sub.Name, s.countryCode, sub.MobileNumber, sub.SelectedWebsite))
	f.Reset()
	return link, nil
}
