package users

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/videoclub/internal/common"
	"github.com/dmitrijs2005/videoclub/internal/server/dbtest"
	"github.com/dmitrijs2005/videoclub/internal/server/models"
)

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(dbtest.NewSQLite(t))

	created, err := repo.Create(ctx, &models.User{Email: "alice@example.com", PasswordHash: "hash", FirstName: "Alice"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byEmail, err := repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)
	assert.Equal(t, "Alice", byEmail.FirstName)

	byID, err := repo.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)

	_, err = repo.Create(ctx, &models.User{Email: "bob@example.com", PasswordHash: "h2"})
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alice@example.com", all[0].Email)
	assert.Equal(t, "bob@example.com", all[1].Email)
}

func TestSQLiteRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(dbtest.NewSQLite(t))

	_, err := repo.Create(ctx, &models.User{Email: "dup@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{Email: "dup@example.com", PasswordHash: "h"})
	require.True(t, errors.Is(err, common.ErrorAlreadyExists), "got %v", err)
}

func TestSQLiteRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(dbtest.NewSQLite(t))

	_, err := repo.GetUserByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.GetUserByID(ctx, 999)
	require.ErrorIs(t, err, common.ErrorNotFound)
}
