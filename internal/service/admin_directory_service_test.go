package service

import (
	"context"
	"testing"

	"reddybook/internal/models"
	"reddybook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminDirectoryService_CreateAndLookup(t *testing.T) {
	db := newTestDB(t)
	identities, _ := newIdentityService(t, db)
	svc := NewAdminDirectoryService(identities, repository.NewAdminRepository(db))
	ctx := context.Background()

	admin, err := svc.Create(ctx, "mod@example.com", "secret1", "moderator", "")
	require.NoError(t, err)
	assert.Equal(t, "moderator", admin.Role)
	assert.Equal(t, "mod@example.com", admin.Identity.Email)

	got, err := svc.Lookup(admin.UserID)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "mod@example.com", list[0].Identity.Email)
}

func TestAdminDirectoryService_InvalidRoleCreatesNothing(t *testing.T) {
	db := newTestDB(t)
	identities, _ := newIdentityService(t, db)
	svc := NewAdminDirectoryService(identities, repository.NewAdminRepository(db))

	_, err := svc.Create(context.Background(), "x@example.com", "secret1", "owner", "")
	assert.ErrorIs(t, err, ErrInvalidRole)

	var count int64
	db.Model(&models.Identity{}).Count(&count)
	assert.Zero(t, count)
}

func TestAdminDirectoryService_LookupWithoutRowIsDenied(t *testing.T) {
	db := newTestDB(t)
	identities, _ := newIdentityService(t, db)
	svc := NewAdminDirectoryService(identities, repository.NewAdminRepository(db))

	identity, err := identities.SignUp(context.Background(), "plain@example.com", "secret1", "")
	require.NoError(t, err)

	_, err = svc.Lookup(identity.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

// fixedIdentity signs up every caller as the same identity, so a second
// directory insert collides with the first.
type fixedIdentity struct {
	IdentityProvider
	identity *models.Identity
}

func (f *fixedIdentity) SignUp(context.Context, string, string, string) (*models.Identity, error) {
	return f.identity, nil
}

func TestAdminDirectoryService_SecondPhaseFailureLeavesOrphan(t *testing.T) {
	db := newTestDB(t)
	identityRepo := repository.NewIdentityRepository(db)
	orphan := &models.Identity{ID: "5d0c6a8e-0000-4000-8000-000000000001", Email: "orphan@example.com", PasswordHash: "x"}
	require.NoError(t, identityRepo.Create(orphan))

	adminRepo := repository.NewAdminRepository(db)
	svc := NewAdminDirectoryService(&fixedIdentity{identity: orphan}, adminRepo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "orphan@example.com", "secret1", "admin", "")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(mustLookup(t, svc, orphan.ID).ID))

	orphans, err := svc.Orphans()
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, orphan.ID, orphans[0].ID)

	// a unique violation in phase two surfaces as ErrAuthorizationNotRecorded
	_, err = svc.Create(ctx, "orphan@example.com", "secret1", "admin", "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "orphan@example.com", "secret1", "admin", "")
	assert.ErrorIs(t, err, ErrAuthorizationNotRecorded)

	_, err = identityRepo.GetByID(orphan.ID)
	assert.NoError(t, err, "identity stays after a failed second phase")
}

func mustLookup(t *testing.T, svc *AdminDirectoryService, identityID string) *models.AdminUser {
	t.Helper()
	a, err := svc.Lookup(identityID)
	require.NoError(t, err)
	return a
}

func TestAdminDirectoryService_DeleteMissing(t *testing.T) {
	db := newTestDB(t)
	identities, _ := newIdentityService(t, db)
	svc := NewAdminDirectoryService(identities, repository.NewAdminRepository(db))
	assert.ErrorIs(t, svc.Delete(42), ErrAdminNotFound)
}
