package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_SignUp(t *testing.T) {
	db := newTestDB(t)
	svc, mailer := newIdentityService(t, db)
	ctx := context.Background()

	identity, err := svc.SignUp(ctx, " Admin@Example.com ", "secret1", "https://app.test/admin")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", identity.Email)
	assert.NotEmpty(t, identity.ID)
	assert.NotEqual(t, "secret1", identity.PasswordHash)
	assert.Equal(t, []string{"admin@example.com"}, mailer.sent)

	_, err = svc.SignUp(ctx, "admin@example.com", "another", "")
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = svc.SignUp(ctx, "new@example.com", "12345", "")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = svc.SignUp(ctx, "not-an-email", "secret1", "")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestIdentityService_MailFailureDoesNotFailSignUp(t *testing.T) {
	svc, mailer := newIdentityService(t, newTestDB(t))
	mailer.err = errors.New("smtp down")

	_, err := svc.SignUp(context.Background(), "a@example.com", "secret1", "")
	assert.NoError(t, err)
}

func TestIdentityService_SignInAndSession(t *testing.T) {
	svc, _ := newIdentityService(t, newTestDB(t))
	ctx := context.Background()
	_, err := svc.SignUp(ctx, "a@example.com", "secret1", "")
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, "a@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCreds)
	_, err = svc.SignIn(ctx, "missing@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCreds)

	sess, err := svc.SignIn(ctx, "A@example.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	assert.NotNil(t, sess.Identity.LastSignInAt)

	got, err := svc.GetSession(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.Identity.ID, got.Identity.ID)
	assert.Equal(t, sess.ID, got.ID)

	require.NoError(t, svc.SignOut(ctx, got.ID))
	_, err = svc.GetSession(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = svc.GetSession(ctx, "garbage")
	assert.ErrorIs(t, err, ErrNoSession)
}
