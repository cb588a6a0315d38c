package services

import (
	"context"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
)

// DashboardSvcFacade defines the read-only dashboard aggregations.
type DashboardSvcFacade interface {
	// GetLedgerDashboard returns the month-to-date total and the five most
	// recent entries of the given kind.
	GetLedgerDashboard(ctx context.Context, kind domain.EntryKind) (*domain.LedgerDashboard, error)

	// GetLoanDashboard returns all-time loan totals by direction and the
	// net position.
	GetLoanDashboard(ctx context.Context) (*domain.LoanDashboard, error)
}
