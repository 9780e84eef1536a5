// Package movies reads the movie catalog. The catalog is read-only for the
// service; it is loaded by migrations or external tooling.
package movies

import (
	"context"

	"github.com/dmitrijs2005/videoclub/internal/server/models"
)

// Repository looks up catalog titles. Titles are expected to be unique;
// when they are not, title lookups resolve to the lowest movie_id.
// Misses return common.ErrorNotFound.
type Repository interface {
	FindIDByTitle(ctx context.Context, title string) (int64, error)
	GetByTitle(ctx context.Context, title string) (*models.Movie, error)
	ListTitles(ctx context.Context) ([]models.MovieTitle, error)
	GetGenre(ctx context.Context, name string) (*models.Genre, error)
	ListByGenre(ctx context.Context, genreID int64) ([]models.MovieTitle, error)
}
