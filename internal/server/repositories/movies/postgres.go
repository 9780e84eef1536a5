package movies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/videoclub/internal/common"
	"github.com/dmitrijs2005/videoclub/internal/dbx"
	"github.com/dmitrijs2005/videoclub/internal/server/models"
)

// movieColumns lists the descriptive columns in models.Movie field order.
// Nullable catalog columns are coalesced so partial imports still scan.
const movieColumns = `movie_id, title,
		COALESCE(budget, 0), COALESCE(genres, ''), COALESCE(original_language, ''),
		COALESCE(original_title, ''), COALESCE(overview, ''), COALESCE(popularity, 0),
		COALESCE(release_date, ''), COALESCE(revenue, 0), COALESCE(runtime, 0),
		COALESCE(vote_average, 0), COALESCE(vote_count, 0)`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindIDByTitle(ctx context.Context, title string) (int64, error) {
	query :=
		`SELECT movie_id FROM movie
		 WHERE title = $1
		 ORDER BY movie_id
		 LIMIT 1
		 `

	return scanID(r.db.QueryRowContext(ctx, query, title))
}

func (r *PostgresRepository) GetByTitle(ctx context.Context, title string) (*models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movie
		 WHERE title = $1
		 ORDER BY movie_id
		 LIMIT 1
		 `

	return scanMovie(r.db.QueryRowContext(ctx, query, title))
}

func (r *PostgresRepository) ListTitles(ctx context.Context) ([]models.MovieTitle, error) {
	query :=
		`SELECT movie_id, title FROM movie
		 ORDER BY movie_id
		 `

	return listTitles(ctx, r.db, query)
}

func (r *PostgresRepository) GetGenre(ctx context.Context, name string) (*models.Genre, error) {
	query :=
		`SELECT genre_id, genre FROM genre
		 WHERE genre = $1
		 `

	return scanGenre(r.db.QueryRowContext(ctx, query, name))
}

func (r *PostgresRepository) ListByGenre(ctx context.Context, genreID int64) ([]models.MovieTitle, error) {
	query :=
		`SELECT m.movie_id, m.title FROM movie m
		 JOIN movie_genre mg ON mg.movie_id = m.movie_id
		 WHERE mg.genre_id = $1
		 ORDER BY m.movie_id
		 `

	return listTitles(ctx, r.db, query, genreID)
}

func scanID(row *sql.Row) (int64, error) {
	var id int64
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func scanMovie(row *sql.Row) (*models.Movie, error) {
	m := &models.Movie{}
	err := row.Scan(&m.ID, &m.Title,
		&m.Budget, &m.Genres, &m.OriginalLanguage,
		&m.OriginalTitle, &m.Overview, &m.Popularity,
		&m.ReleaseDate, &m.Revenue, &m.Runtime,
		&m.VoteAverage, &m.VoteCount)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func scanGenre(row *sql.Row) (*models.Genre, error) {
	g := &models.Genre{}
	if err := row.Scan(&g.ID, &g.Genre); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}

func listTitles(ctx context.Context, db dbx.DBTX, query string, args ...any) ([]models.MovieTitle, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.MovieTitle, 0)
	for rows.Next() {
		var t models.MovieTitle
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
