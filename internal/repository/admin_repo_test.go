package repository

import (
	"testing"

	"reddybook/internal/models"
	"reddybook/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRepository_LookupAndOrphans(t *testing.T) {
	db := testutil.NewDB(t)
	identities := NewIdentityRepository(db)
	admins := NewAdminRepository(db)

	require.NoError(t, identities.Create(&models.Identity{ID: "id-admin", Email: "a@example.com", PasswordHash: "x"}))
	require.NoError(t, identities.Create(&models.Identity{ID: "id-orphan", Email: "o@example.com", PasswordHash: "x"}))
	require.NoError(t, admins.Create(&models.AdminUser{UserID: "id-admin", Role: "admin"}))

	row, err := admins.GetByUserID("id-admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", row.Role)

	_, err = admins.GetByUserID("id-orphan")
	assert.ErrorIs(t, err, ErrNotFound)

	orphans, err := admins.ListOrphanIdentities()
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, "o@example.com", orphans[0].Email)

	list, err := admins.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Identity)
	assert.Equal(t, "a@example.com", list[0].Identity.Email)
}

func TestAdminRepository_DeleteKeepsIdentity(t *testing.T) {
	db := testutil.NewDB(t)
	identities := NewIdentityRepository(db)
	admins := NewAdminRepository(db)

	require.NoError(t, identities.Create(&models.Identity{ID: "id-1", Email: "x@example.com", PasswordHash: "x"}))
	a := &models.AdminUser{UserID: "id-1", Role: "moderator"}
	require.NoError(t, admins.Create(a))

	require.NoError(t, admins.Delete(a.ID))

	_, err := identities.GetByID("id-1")
	assert.NoError(t, err)
	_, err = admins.GetByUserID("id-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
