package service

import (
	"context"
	"errors"
	"fmt"

	"reddybook/internal/domain"
	"reddybook/internal/models"
	"reddybook/internal/repository"
)

var (
	ErrAccessDenied  = errors.New("you don't have admin privileges")
	ErrInvalidRole   = errors.New("role must be admin or moderator")
	ErrAdminNotFound = errors.New("admin user not found")
	// ErrAuthorizationNotRecorded means the identity was created but its
	// directory row was not. The identity is left in place and shows up in Orphans.
	ErrAuthorizationNotRecorded = errors.New("identity created but admin role not recorded")
)

// AdminDirectoryService manages which identities may use the back office.
type AdminDirectoryService struct {
	identities IdentityProvider
	repo       *repository.AdminRepository
}

func NewAdminDirectoryService(identities IdentityProvider, repo *repository.AdminRepository) *AdminDirectoryService {
	return &AdminDirectoryService{identities: identities, repo: repo}
}

func (s *AdminDirectoryService) List() ([]models.AdminUser, error) {
	return s.repo.List()
}

// Create signs up a new identity and then records its role. The two steps are
// not atomic: when the second fails the identity already exists.
func (s *AdminDirectoryService) Create(ctx context.Context, email, password, role, redirectTo string) (*models.AdminUser, error) {
	if !domain.IsValidRole(role) {
		return nil, ErrInvalidRole
	}
	identity, err := s.identities.SignUp(ctx, email, password, redirectTo)
	if err != nil {
		return nil, err
	}
	admin := &models.AdminUser{UserID: identity.ID, Role: role}
	if err := s.repo.Create(admin); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthorizationNotRecorded, err)
	}
	admin.Identity = identity
	return admin, nil
}

func (s *AdminDirectoryService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdminNotFound
		}
		return err
	}
	return nil
}

// Lookup returns the directory row for an identity, or ErrAccessDenied.
func (s *AdminDirectoryService) Lookup(identityID string) (*models.AdminUser, error) {
	a, err := s.repo.GetByUserID(identityID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, err
	}
	return a, nil
}

// Orphans lists identities without a directory row, typically left behind by
// a Create whose second step failed.
func (s *AdminDirectoryService) Orphans() ([]models.Identity, error) {
	return s.repo.ListOrphanIdentities()
}
