package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/videoclub/internal/common"
	"github.com/dmitrijs2005/videoclub/internal/dbx"
	"github.com/dmitrijs2005/videoclub/internal/server/models"
	"github.com/dmitrijs2005/videoclub/internal/server/repositories/repomanager"
)

// RentalService keeps the rental ledger: a (movie, user) pair has at most
// one open rental, which Return closes exactly once.
//
// Rent checks and inserts inside one transaction and relies on the
// rental_open_uniq partial index to reject concurrent inserts that pass the
// check, so the guarantee holds across service instances.
type RentalService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         Clock
}

func NewRentalService(db *sql.DB, m repomanager.RepositoryManager) *RentalService {
	return &RentalService{db: db, repomanager: m, now: time.Now}
}

// WithClock replaces the time source used for date_start and date_end.
func (s *RentalService) WithClock(c Clock) *RentalService {
	s.now = c
	return s
}

// Rent opens a rental of title for userID.
func (s *RentalService) Rent(ctx context.Context, userID int64, title string) (*models.Rental, error) {
	movieID, err := s.resolveTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	var rental *models.Rental
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Rentals(tx)

		_, err := repo.FindOpen(ctx, movieID, userID)
		if err == nil {
			return common.ErrAlreadyRenting
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		rental, err = repo.Create(ctx, movieID, userID, s.now().UTC())
		if errors.Is(err, common.ErrorAlreadyExists) {
			return common.ErrAlreadyRenting
		}
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyRenting) {
			return nil, common.ErrAlreadyRenting
		}
		return nil, fmt.Errorf("error creating rental: %w", err)
	}

	return rental, nil
}

// Return closes the open rental of title for userID and returns it.
func (s *RentalService) Return(ctx context.Context, userID int64, title string) (*models.Rental, error) {
	movieID, err := s.resolveTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	var rental *models.Rental
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		rental, err = s.repomanager.Rentals(tx).Close(ctx, movieID, userID, s.now().UTC())
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNotRenting
		}
		return nil, fmt.Errorf("error closing rental: %w", err)
	}

	return rental, nil
}

// ListForUser returns all rentals of userID, open and closed, by rental id.
func (s *RentalService) ListForUser(ctx context.Context, userID int64) ([]models.Rental, error) {
	rentals, err := s.repomanager.Rentals(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing rentals: %w", err)
	}
	return rentals, nil
}

// resolveTitle runs outside the rental transaction; the catalog is read-only.
func (s *RentalService) resolveTitle(ctx context.Context, title string) (int64, error) {
	if title == "" {
		return 0, common.ErrMissingTitle
	}

	id, err := s.repomanager.Movies(s.db).FindIDByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, common.ErrTitleNotFound
		}
		return 0, fmt.Errorf("error resolving title: %w", err)
	}
	return id, nil
}
