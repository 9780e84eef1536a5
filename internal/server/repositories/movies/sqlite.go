package movies

import (
	"context"

	"github.com/dmitrijs2005/videoclub/internal/dbx"
	"github.com/dmitrijs2005/videoclub/internal/server/models"
)

// SQLiteRepository is the modernc.org/sqlite flavour of Repository.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) FindIDByTitle(ctx context.Context, title string) (int64, error) {
	query := `SELECT movie_id FROM movie WHERE title = ? ORDER BY movie_id LIMIT 1`
	return scanID(r.db.QueryRowContext(ctx, query, title))
}

func (r *SQLiteRepository) GetByTitle(ctx context.Context, title string) (*models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movie WHERE title = ? ORDER BY movie_id LIMIT 1`
	return scanMovie(r.db.QueryRowContext(ctx, query, title))
}

func (r *SQLiteRepository) ListTitles(ctx context.Context) ([]models.MovieTitle, error) {
	return listTitles(ctx, r.db, `SELECT movie_id, title FROM movie ORDER BY movie_id`)
}

func (r *SQLiteRepository) GetGenre(ctx context.Context, name string) (*models.Genre, error) {
	query := `SELECT genre_id, genre FROM genre WHERE genre = ?`
	return scanGenre(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteRepository) ListByGenre(ctx context.Context, genreID int64) ([]models.MovieTitle, error) {
	query :=
		`SELECT m.movie_id, m.title FROM movie m
		 JOIN movie_genre mg ON mg.movie_id = m.movie_id
		 WHERE mg.genre_id = ?
		 ORDER BY m.movie_id`

	return listTitles(ctx, r.db, query, genreID)
}
