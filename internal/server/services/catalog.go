package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/videoclub/internal/common"
	"github.com/dmitrijs2005/videoclub/internal/server/models"
	"github.com/dmitrijs2005/videoclub/internal/server/repositories/repomanager"
)

// CatalogService answers read-only catalog queries.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

func (s *CatalogService) ListTitles(ctx context.Context) ([]models.MovieTitle, error) {
	titles, err := s.repomanager.Movies(s.db).ListTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing titles: %w", err)
	}
	return titles, nil
}

// ListByGenre returns the titles tagged with genre. An existing genre with
// no titles yields an empty list.
func (s *CatalogService) ListByGenre(ctx context.Context, genre string) ([]models.MovieTitle, error) {
	if genre == "" {
		return nil, common.ErrMissingCategory
	}

	repo := s.repomanager.Movies(s.db)
	g, err := repo.GetGenre(ctx, genre)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrGenreNotFound
		}
		return nil, fmt.Errorf("error searching genre: %w", err)
	}

	titles, err := repo.ListByGenre(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing titles: %w", err)
	}
	return titles, nil
}

// Describe returns the full catalog record for title.
func (s *CatalogService) Describe(ctx context.Context, title string) (*models.Movie, error) {
	if title == "" {
		return nil, common.ErrMissingTitle
	}

	m, err := s.repomanager.Movies(s.db).GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrTitleNotFound
		}
		return nil, fmt.Errorf("error loading movie: %w", err)
	}
	return m, nil
}
