package repositories

import (
	"context"
	"time"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardRepository defines the read-only aggregation queries backing the
// dashboards. Never mutates balances.
type DashboardRepository interface {
	// SumEntriesSince sums amounts of entries of the given kind dated at or
	// after since.
	SumEntriesSince(ctx context.Context, kind domain.EntryKind, since time.Time) (decimal.Decimal, error)

	// RecentEntriesSince returns up to limit entries of the given kind dated
	// at or after since, ordered by occurred_at descending with entry id
	// descending as the tie-break.
	RecentEntriesSince(ctx context.Context, kind domain.EntryKind, since time.Time, limit int) ([]domain.Entry, error)

	// LoanTotals returns the all-time sums of GIVEN and TAKEN loans.
	LoanTotals(ctx context.Context) (given decimal.Decimal, taken decimal.Decimal, err error)
}
