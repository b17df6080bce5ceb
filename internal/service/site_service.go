package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/url"
	"strings"

	"reddybook/internal/domain"
	"reddybook/internal/models"
	"reddybook/internal/repository"
	"reddybook/pkg/blob"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

var (
	ErrSiteNotFound = errors.New("site not found")
	ErrInvalidSite  = errors.New("invalid site")
	ErrInvalidLogo  = errors.New("invalid logo")
	// ErrLogoUpload aborts a save; the site row is not written.
	ErrLogoUpload = errors.New("logo upload failed")
)

// SiteInput is the editable part of a referral site. Logo, when set, replaces LogoURL.
type SiteInput struct {
	Name        string
	DisplayName string
	URL         string
	ButtonColor string
	LogoURL     string
	Logo        io.Reader
}

type SiteService struct {
	repo   *repository.SiteRepository
	blobs  blob.Store
	policy *bluemonday.Policy
}

func NewSiteService(repo *repository.SiteRepository, blobs blob.Store) *SiteService {
	return &SiteService{repo: repo, blobs: blobs, policy: bluemonday.StrictPolicy()}
}

func (s *SiteService) ListAll() ([]models.ReferralSite, error) {
	return s.repo.ListAll()
}

func (s *SiteService) ListActive() ([]models.ReferralSite, error) {
	return s.repo.ListActive()
}

func (s *SiteService) Create(ctx context.Context, in SiteInput) (*models.ReferralSite, error) {
	site := &models.ReferralSite{IsActive: true}
	if err := s.apply(ctx, site, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(site); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *SiteService) Update(ctx context.Context, id uint, in SiteInput) (*models.ReferralSite, error) {
	site, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, site, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(site); err != nil {
		return nil, err
	}
	return s.get(id)
}

func (s *SiteService) SetActive(id uint, active bool) (*models.ReferralSite, error) {
	if _, err := s.get(id); err != nil {
		return nil, err
	}
	if err := s.repo.SetActive(id, active); err != nil {
		return nil, err
	}
	return s.get(id)
}

func (s *SiteService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSiteNotFound
		}
		return err
	}
	return nil
}

// UploadLogo stores an image under the logo namespace and returns its public URL.
func (s *SiteService) UploadLogo(ctx context.Context, r io.Reader) (string, error) {
	img, err := blob.ReadImage(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidLogo, err)
	}
	name := uuid.NewString() + img.Ext
	if err := s.blobs.Upload(ctx, domain.LogoNamespace, name, bytes.NewReader(img.Content), img.ContentType); err != nil {
		return "", fmt.Errorf("%w: %w", ErrLogoUpload, err)
	}
	return s.blobs.PublicURL(domain.LogoNamespace, name), nil
}

func (s *SiteService) get(id uint) (*models.ReferralSite, error) {
	site, err := s.repo.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSiteNotFound
	}
	return site, err
}

// apply validates in and copies it onto site. The logo is uploaded only after
// the text fields pass.
func (s *SiteService) apply(ctx context.Context, site *models.ReferralSite, in SiteInput) error {
	name := s.clean(in.Name)
	displayName := s.clean(in.DisplayName)
	if name == "" || displayName == "" {
		return fmt.Errorf("%w: name and display name are required", ErrInvalidSite)
	}
	siteURL := strings.TrimSpace(in.URL)
	if !isHTTPURL(siteURL) {
		return fmt.Errorf("%w: url must be an absolute http(s) address", ErrInvalidSite)
	}
	color := strings.ToLower(strings.TrimSpace(in.ButtonColor))
	if color == "" {
		color = domain.ButtonGreen
	}
	if !domain.IsValidButtonColor(color) {
		return fmt.Errorf("%w: button color must be one of %s", ErrInvalidSite, strings.Join(domain.ButtonColors, ", "))
	}

	var logoURL *string
	if in.Logo != nil {
		u, err := s.UploadLogo(ctx, in.Logo)
		if err != nil {
			return err
		}
		logoURL = &u
	} else if v := strings.TrimSpace(in.LogoURL); v != "" {
		logoURL = &v
	}

	site.Name = name
	site.DisplayName = displayName
	site.URL = siteURL
	site.ButtonColor = color
	site.LogoURL = logoURL
	return nil
}

func (s *SiteService) clean(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}

func isHTTPURL(v string) bool {
	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
