package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sara/shopease/internal/database/models"
	"github.com/sara/shopease/internal/store"
	"github.com/sara/shopease/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := store.NewUsers(db)
	ctx := context.Background()

	t.Run("duplicate email maps to ErrDuplicateEmail", func(t *testing.T) {
		first := &models.User{Email: "dup@x.com", PasswordHash: "h", Name: "A", Role: models.RoleUser}
		require.NoError(t, users.Create(ctx, first))

		second := &models.User{Email: "dup@x.com", PasswordHash: "h", Name: "B", Role: models.RoleUser}
		assert.ErrorIs(t, users.Create(ctx, second), store.ErrDuplicateEmail)
	})

	t.Run("nil token columns do not collide", func(t *testing.T) {
		// Outstanding tokens are unique; absent tokens must not be.
		for _, email := range []string{"one@x.com", "two@x.com", "three@x.com"} {
			u := &models.User{Email: email, PasswordHash: "h", Name: "N", Role: models.RoleUser}
			require.NoError(t, users.Create(ctx, u))
		}
	})
}

func TestUsers_FindByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := store.NewUsers(db)
	ctx := context.Background()

	created := testutil.CreateTestUser(t, db)

	found, err := users.FindByEmail(ctx, created.Email)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = users.FindByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_FindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := store.NewUsers(db)
	ctx := context.Background()

	created := testutil.CreateTestUser(t, db)

	found, err := users.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, found.Email)

	_, err = users.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_ConsumeVerificationToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := store.NewUsers(db)
	ctx := context.Background()

	newPending := func(t *testing.T, email, token string) *models.User {
		t.Helper()
		u := &models.User{
			Email:             email,
			PasswordHash:      "h",
			Name:              "Pending",
			Role:              models.RoleUser,
			VerificationToken: &token,
		}
		require.NoError(t, users.Create(ctx, u))
		return u
	}

	t.Run("consumes exactly once", func(t *testing.T) {
		u := newPending(t, "once@x.com", "tok-once")

		verified, err := users.ConsumeVerificationToken(ctx, "tok-once")
		require.NoError(t, err)
		assert.Equal(t, u.ID, verified.ID)
		assert.True(t, verified.IsVerified)
		assert.Nil(t, verified.VerificationToken)

		stored, err := users.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsVerified)
		assert.Nil(t, stored.VerificationToken)

		_, err = users.ConsumeVerificationToken(ctx, "tok-once")
		assert.ErrorIs(t, err, store.ErrTokenNotFound)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := users.ConsumeVerificationToken(ctx, "never-issued")
		assert.ErrorIs(t, err, store.ErrTokenNotFound)
	})

	t.Run("empty token never matches", func(t *testing.T) {
		// Verified users hold NULL tokens; "" must not select any of them.
		testutil.CreateTestUser(t, db)
		_, err := users.ConsumeVerificationToken(ctx, "")
		assert.ErrorIs(t, err, store.ErrTokenNotFound)
	})
}

func TestUsers_ResetTokenLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := store.NewUsers(db)
	ctx := context.Background()

	t.Run("consume before expiry", func(t *testing.T) {
		u := testutil.CreateTestUser(t, db)
		now := time.Now()
		require.NoError(t, users.SetResetToken(ctx, u.ID, "tok-fresh", now.Add(30*time.Minute)))

		// 29 minutes in: still valid
		updated, err := users.ConsumeResetToken(ctx, "tok-fresh", "newhash", now.Add(29*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, "newhash", updated.PasswordHash)
		assert.Nil(t, updated.ResetPasswordToken)
		assert.Nil(t, updated.ResetPasswordExpires)

		stored, err := users.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "newhash", stored.PasswordHash)
		assert.Nil(t, stored.ResetPasswordToken)
	})

	t.Run("consume at or after expiry fails", func(t *testing.T) {
		u := testutil.CreateTestUser(t, db)
		now := time.Now()
		require.NoError(t, users.SetResetToken(ctx, u.ID, "tok-stale", now.Add(30*time.Minute)))

		_, err := users.ConsumeResetToken(ctx, "tok-stale", "newhash", now.Add(30*time.Minute))
		assert.ErrorIs(t, err, store.ErrTokenNotFound)

		_, err = users.ConsumeResetToken(ctx, "tok-stale", "newhash", now.Add(31*time.Minute))
		assert.ErrorIs(t, err, store.ErrTokenNotFound)

		// Password untouched after a failed consume
		stored, err := users.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.PasswordHash, stored.PasswordHash)
	})

	t.Run("token is single-use", func(t *testing.T) {
		u := testutil.CreateTestUser(t, db)
		now := time.Now()
		require.NoError(t, users.SetResetToken(ctx, u.ID, "tok-replay", now.Add(30*time.Minute)))

		_, err := users.ConsumeResetToken(ctx, "tok-replay", "firsthash", now)
		require.NoError(t, err)

		_, err = users.ConsumeResetToken(ctx, "tok-replay", "secondhash", now)
		assert.ErrorIs(t, err, store.ErrTokenNotFound)

		stored, err := users.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "firsthash", stored.PasswordHash)
	})

	t.Run("reissue replaces the previous token", func(t *testing.T) {
		u := testutil.CreateTestUser(t, db)
		now := time.Now()
		require.NoError(t, users.SetResetToken(ctx, u.ID, "tok-old", now.Add(30*time.Minute)))
		require.NoError(t, users.SetResetToken(ctx, u.ID, "tok-new", now.Add(30*time.Minute)))

		_, err := users.ConsumeResetToken(ctx, "tok-old", "h", now)
		assert.ErrorIs(t, err, store.ErrTokenNotFound)

		_, err = users.ConsumeResetToken(ctx, "tok-new", "h", now)
		assert.NoError(t, err)
	})
}

func TestUsers_AdminExists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := store.NewUsers(db)
	ctx := context.Background()

	exists, err := users.AdminExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	testutil.CreateTestUser(t, db)
	exists, err = users.AdminExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	testutil.CreateTestAdmin(t, db)
	exists, err = users.AdminExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUsers_ListByRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := store.NewUsers(db)
	ctx := context.Background()

	testutil.CreateTestAdmin(t, db)
	first := testutil.CreateTestUser(t, db)
	second := testutil.CreateTestUser(t, db)

	list, err := users.ListByRole(ctx, models.RoleUser)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, u := range list {
		assert.Equal(t, models.RoleUser, u.Role)
		assert.Contains(t, []uuid.UUID{first.ID, second.ID}, u.ID)
	}
}
