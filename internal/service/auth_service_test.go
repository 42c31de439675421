package service

import (
	"context"
	"testing"

	"theme-park-ticketing/internal/model"
	"theme-park-ticketing/internal/session"
	apperrors "theme-park-ticketing/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Signup(t *testing.T) {
	ds, sessions := newTestDataset(t)
	auth := NewAuthService(ds, sessions)
	ctx := context.Background()

	t.Run("Success - customer can log in afterwards", func(t *testing.T) {
		require.NoError(t, auth.Signup(ctx, session.RoleCustomer, "alice", "secret123", "alice@example.com"))

		sess, err := auth.Login(ctx, session.RoleCustomer, "alice", "secret123")
		require.NoError(t, err)
		assert.Equal(t, session.RoleCustomer, sess.Role)
		assert.Equal(t, "alice", sess.AccountID)
	})

	t.Run("Failed - invalid fields create no account", func(t *testing.T) {
		err := auth.Signup(ctx, session.RoleCustomer, "bb", "secret123", "bb@example.com")
		require.Error(t, err)
		assert.Equal(t, "username", apperrors.AsValidation(err).Field)

		_, err = auth.Login(ctx, session.RoleCustomer, "bb", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
	})

	t.Run("Failed - duplicate username", func(t *testing.T) {
		err := auth.Signup(ctx, session.RoleCustomer, "alice", "other1234", "alice2@example.com")
		require.Error(t, err)
		assert.Equal(t, "username", apperrors.AsValidation(err).Field)
	})
}

func TestAuthService_Login(t *testing.T) {
	ds, sessions := newTestDataset(t)
	auth := NewAuthService(ds, sessions)
	ctx := context.Background()
	require.NoError(t, auth.Signup(ctx, session.RoleCustomer, "alice", "secret123", "alice@example.com"))

	t.Run("Failed - wrong password and unknown user look identical", func(t *testing.T) {
		_, errWrong := auth.Login(ctx, session.RoleCustomer, "alice", "wrongpass")
		_, errUnknown := auth.Login(ctx, session.RoleCustomer, "nobody", "secret123")
		assert.ErrorIs(t, errWrong, apperrors.ErrAuthentication)
		assert.ErrorIs(t, errUnknown, apperrors.ErrAuthentication)
	})

	t.Run("Logout ends the session", func(t *testing.T) {
		sess, err := auth.Login(ctx, session.RoleCustomer, "alice", "secret123")
		require.NoError(t, err)

		auth.Logout(ctx, sess.Token)
		_, ok := sessions.Get(sess.Token)
		assert.False(t, ok)
	})
}

func TestAuthService_UpdateAccount(t *testing.T) {
	ds, sessions := newTestDataset(t)
	auth := NewAuthService(ds, sessions)
	ctx := context.Background()
	sess := signupAndLogin(t, auth, "alice")

	t.Run("Success - rename follows the session", func(t *testing.T) {
		newName := "alicia"
		require.NoError(t, auth.UpdateAccount(ctx, sess, model.AccountUpdate{Username: &newName}))

		got, ok := sessions.Get(sess.Token)
		require.True(t, ok)
		assert.Equal(t, "alicia", got.AccountID)

		_, err := auth.Login(ctx, session.RoleCustomer, "alicia", "secret123")
		assert.NoError(t, err)
	})

	t.Run("Failed - rename onto a taken username", func(t *testing.T) {
		signupAndLogin(t, auth, "bob")
		taken := "bob"
		err := auth.UpdateAccount(ctx, sess, model.AccountUpdate{Username: &taken})
		require.Error(t, err)
		assert.Equal(t, "username", apperrors.AsValidation(err).Field)
	})
}

func TestAuthService_DeleteAccount(t *testing.T) {
	ds, sessions := newTestDataset(t)
	auth := NewAuthService(ds, sessions)
	ctx := context.Background()
	sess := signupAndLogin(t, auth, "alice")

	require.NoError(t, auth.DeleteAccount(ctx, sess))

	_, ok := sessions.Get(sess.Token)
	assert.False(t, ok)

	_, err := auth.Login(ctx, session.RoleCustomer, "alice", "secret123")
	assert.ErrorIs(t, err, apperrors.ErrAuthentication)
}

func TestAuthService_AdminManagement(t *testing.T) {
	ds, sessions := newTestDataset(t)
	auth := NewAuthService(ds, sessions)
	ctx := context.Background()

	t.Run("create and login", func(t *testing.T) {
		require.NoError(t, auth.CreateAdmin(ctx, "admin1", "secret123", "admin@example.com"))
		sess, err := auth.Login(ctx, session.RoleAdmin, "admin1", "secret123")
		require.NoError(t, err)
		assert.Equal(t, session.RoleAdmin, sess.Role)
	})

	t.Run("duplicate admin ID rejected", func(t *testing.T) {
		err := auth.CreateAdmin(ctx, "admin1", "other1234", "dup@example.com")
		require.Error(t, err)
		assert.Equal(t, "admin_id", apperrors.AsValidation(err).Field)
	})

	t.Run("change password takes effect", func(t *testing.T) {
		require.NoError(t, auth.ChangeAdminPassword(ctx, "admin1", "newsecret"))
		_, err := auth.Login(ctx, session.RoleAdmin, "admin1", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
		_, err = auth.Login(ctx, session.RoleAdmin, "admin1", "newsecret")
		assert.NoError(t, err)
	})

	t.Run("delete ends admin sessions", func(t *testing.T) {
		sess, err := auth.Login(ctx, session.RoleAdmin, "admin1", "newsecret")
		require.NoError(t, err)

		require.NoError(t, auth.DeleteAdmin(ctx, "admin1"))
		_, ok := sessions.Get(sess.Token)
		assert.False(t, ok)

		assert.ErrorIs(t, auth.DeleteAdmin(ctx, "admin1"), apperrors.ErrNotFound)
	})
}
