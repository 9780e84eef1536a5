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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, movieID, userID int64, start time.Time) (*models.Rental, error) {

	query :=
		`INSERT INTO rental (movie_id, user_id, date_start, paid)
         VALUES ($1, $2, $3, false)
		 RETURNING rental_id
		 `

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

func (r *PostgresRepository) FindOpen(ctx context.Context, movieID, userID int64) (*models.Rental, error) {
	query :=
		`SELECT rental_id, movie_id, user_id, date_start, date_end, paid FROM rental
		 WHERE movie_id = $1 AND user_id = $2 AND NOT paid
		 `

	return scanRental(r.db.QueryRowContext(ctx, query, movieID, userID))
}

func (r *PostgresRepository) Close(ctx context.Context, movieID, userID int64, end time.Time) (*models.Rental, error) {
	query :=
		`UPDATE rental SET paid = true, date_end = $3
		 WHERE movie_id = $1 AND user_id = $2 AND NOT paid
		 RETURNING rental_id, movie_id, user_id, date_start, date_end, paid
		 `

	return scanRental(r.db.QueryRowContext(ctx, query, movieID, userID, end.UTC()))
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.Rental, error) {
	query :=
		`SELECT rental_id, movie_id, user_id, date_start, date_end, paid FROM rental
		 WHERE user_id = $1
		 ORDER BY rental_id
		 `

	return listRentals(ctx, r.db, query, userID)
}

func (r *PostgresRepository) ListOpenByUser(ctx context.Context, userID int64) ([]models.Rental, error) {
	query :=
		`SELECT rental_id, movie_id, user_id, date_start, date_end, paid FROM rental
		 WHERE user_id = $1 AND NOT paid
		 ORDER BY rental_id
		 `

	return listRentals(ctx, r.db, query, userID)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInto(s scanner, rental *models.Rental) error {
	var end sql.NullTime
	if err := s.Scan(&rental.ID, &rental.MovieID, &rental.UserID, &rental.DateStart, &end, &rental.Paid); err != nil {
		return err
	}

	rental.DateStart = rental.DateStart.UTC()
	if end.Valid {
		t := end.Time.UTC()
		rental.DateEnd = &t
	}
	return nil
}

func scanRental(row *sql.Row) (*models.Rental, error) {
	rental := &models.Rental{}
	if err := scanInto(row, rental); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rental, nil
}

func listRentals(ctx context.Context, db dbx.DBTX, query string, args ...any) ([]models.Rental, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Rental, 0)
	for rows.Next() {
		var rental models.Rental
		if err := scanInto(rows, &rental); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
