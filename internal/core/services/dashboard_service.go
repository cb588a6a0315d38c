package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrack-labs/expense_tracker_api/internal/apperrors"
	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	portsrepo "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/repositories"
	portssvc "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/services"
)

// recentEntryLimit is how many entries each ledger dashboard returns.
const recentEntryLimit = 5

// dashboardService implements DashboardSvcFacade. Strictly read-only.
type dashboardService struct {
	BaseService
	dashboardRepo portsrepo.DashboardRepository

	// now is swappable in tests.
	now func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo portsrepo.DashboardRepository) portssvc.DashboardSvcFacade {
	return &dashboardService{
		dashboardRepo: repo,
		now:           time.Now,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// startOfMonth returns the first instant of the current calendar month in
// server local time, matching how clients interpret "this month".
func (s *dashboardService) startOfMonth() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// GetLedgerDashboard computes the month-to-date total for one entry kind
// and the five most recent entries in the window. Ties on occurred_at are
// broken by entry id descending.
func (s *dashboardService) GetLedgerDashboard(ctx context.Context, kind domain.EntryKind) (*domain.LedgerDashboard, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown entry kind %q", apperrors.ErrValidation, kind)
	}

	since := s.startOfMonth()

	total, err := s.dashboardRepo.SumEntriesSince(ctx, kind, since)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum entries for dashboard", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to compute %s month total: %w", kind, err)
	}

	recent, err := s.dashboardRepo.RecentEntriesSince(ctx, kind, since, recentEntryLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch recent entries for dashboard", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to fetch recent %s entries: %w", kind, err)
	}
	if recent == nil {
		recent = []domain.Entry{}
	}

	return &domain.LedgerDashboard{
		Kind:       kind,
		MonthTotal: total,
		Recent:     recent,
	}, nil
}

// GetLoanDashboard aggregates all-time loan totals by direction. Unlike
// the ledger dashboards this is not month-scoped.
func (s *dashboardService) GetLoanDashboard(ctx context.Context) (*domain.LoanDashboard, error) {
	given, taken, err := s.dashboardRepo.LoanTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute loan totals")
		return nil, fmt.Errorf("failed to compute loan totals: %w", err)
	}

	return &domain.LoanDashboard{
		TotalGiven:  given,
		TotalTaken:  taken,
		NetPosition: given.Sub(taken),
	}, nil
}
