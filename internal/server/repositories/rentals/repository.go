// Package rentals persists the rental ledger.
package rentals

import (
	"context"
	"time"

	"github.com/dmitrijs2005/videoclub/internal/server/models"
)

// Repository stores rentals. At most one open (unpaid) rental may exist per
// (movie, user) pair; Create reports a conflicting open rental as
// common.ErrorAlreadyExists. FindOpen and Close report a missing open
// rental as common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, movieID, userID int64, start time.Time) (*models.Rental, error)
	FindOpen(ctx context.Context, movieID, userID int64) (*models.Rental, error)
	Close(ctx context.Context, movieID, userID int64, end time.Time) (*models.Rental, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Rental, error)
	ListOpenByUser(ctx context.Context, userID int64) ([]models.Rental, error)
}
