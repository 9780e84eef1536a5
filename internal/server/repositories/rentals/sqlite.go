package rentals

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/videoclub/internal/common"
	"github.com/dmitrijs2005/videoclub/internal/dbx"
	"github.com/dmitrijs2005/videoclub/internal/server/models"
)

// SQLiteRepository is the modernc.org/sqlite flavour of Repository.
// paid is stored as 0/1.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, movieID, userID int64, start time.Time) (*models.Rental, error) {
	query :=
		`INSERT INTO rental (movie_id, user_id, date_start, paid)
		 VALUES (?, ?, ?, 0)
		 RETURNING rental_id`

	rental := &models.Rental{MovieID: movieID, UserID: userID, DateStart: start.UTC()}

	err := r.db.QueryRowContext(ctx, query, movieID, userID, rental.DateStart).Scan(&rental.ID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rental, nil
}

func (r *SQLiteRepository) FindOpen(ctx context.Context, movieID, userID int64) (*models.Rental, error) {
	query :=
		`SELECT rental_id, movie_id, user_id, date_start, date_end, paid FROM rental
		 WHERE movie_id = ? AND user_id = ? AND paid = 0`

	return scanRental(r.db.QueryRowContext(ctx, query, movieID, userID))
}

func (r *SQLiteRepository) Close(ctx context.Context, movieID, userID int64, end time.Time) (*models.Rental, error) {
	query :=
		`UPDATE rental SET paid = 1, date_end = ?
		 WHERE movie_id = ? AND user_id = ? AND paid = 0
		 RETURNING rental_id`

	id, err := scanRentalID(r.db.QueryRowContext(ctx, query, end.UTC(), movieID, userID))
	if err != nil {
		return nil, err
	}

	// RETURNING columns carry no declared type, so timestamps are re-read
	// from the table where the driver can parse them.
	return scanRental(r.db.QueryRowContext(ctx,
		`SELECT rental_id, movie_id, user_id, date_start, date_end, paid FROM rental WHERE rental_id = ?`, id))
}

func scanRentalID(row *sql.Row) (int64, error) {
	var id int64
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Rental, error) {
	query :=
		`SELECT rental_id, movie_id, user_id, date_start, date_end, paid FROM rental
		 WHERE user_id = ?
		 ORDER BY rental_id`

	return listRentals(ctx, r.db, query, userID)
}

func (r *SQLiteRepository) ListOpenByUser(ctx context.Context, userID int64) ([]models.Rental, error) {
	query :=
		`SELECT rental_id, movie_id, user_id, date_start, date_end, paid FROM rental
		 WHERE user_id = ? AND paid = 0
		 ORDER BY rental_id`

	return listRentals(ctx, r.db, query, userID)
}
