package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/videoclub/internal/server/billing"
	"github.com/dmitrijs2005/videoclub/internal/server/repositories/repomanager"
)

// BillingService totals what a user owes for rentals still out.
type BillingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBillingService(db *sql.DB, m repomanager.RepositoryManager) *BillingService {
	return &BillingService{db: db, repomanager: m}
}

// ChargeForUser sums the fee of every open rental of userID as of asOf.
// Closed rentals are settled and contribute nothing.
func (s *BillingService) ChargeForUser(ctx context.Context, userID int64, asOf time.Time) (billing.Amount, error) {
	open, err := s.repomanager.Rentals(s.db).ListOpenByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("error listing open rentals: %w", err)
	}

	var total billing.Amount
	for _, r := range open {
		total += billing.ChargeAt(r.DateStart, asOf)
	}
	return total, nil
}
