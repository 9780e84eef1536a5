package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/videoclub/internal/common"
)

func TestCatalog_ListTitles(t *testing.T) {
	movies := newFakeMoviesRepo()
	s := NewCatalogService(nil, &fakeRepoManager{m: movies})

	got, err := s.ListTitles(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Pulp Fiction", got[0].Title)

	movies.err = errors.New("db down")
	_, err = s.ListTitles(context.Background())
	require.Error(t, err)
}

func TestCatalog_ListByGenre(t *testing.T) {
	s := NewCatalogService(nil, &fakeRepoManager{m: newFakeMoviesRepo()})
	ctx := context.Background()

	got, err := s.ListByGenre(ctx, "Crime")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.ListByGenre(ctx, "Western")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = s.ListByGenre(ctx, "")
	require.ErrorIs(t, err, common.ErrMissingCategory)

	_, err = s.ListByGenre(ctx, "Opera")
	require.ErrorIs(t, err, common.ErrGenreNotFound)
}

func TestCatalog_Describe(t *testing.T) {
	movies := newFakeMoviesRepo()
	s := NewCatalogService(nil, &fakeRepoManager{m: movies})
	ctx := context.Background()

	m, err := s.Describe(ctx, "Heat")
	require.NoError(t, err)
	assert.Equal(t, int64(949), m.ID)

	_, err = s.Describe(ctx, "")
	require.ErrorIs(t, err, common.ErrMissingTitle)

	_, err = s.Describe(ctx, "Plan 9 from Outer Space")
	require.ErrorIs(t, err, common.ErrTitleNotFound)

	movies.err = errors.New("db down")
	_, err = s.Describe(ctx, "Heat")
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrTitleNotFound))
}
