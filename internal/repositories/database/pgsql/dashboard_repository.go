package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	portsrepo "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/repositories"
	"github.com/fintrack-labs/expense_tracker_api/internal/models"
	"github.com/fintrack-labs/expense_tracker_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxDashboardRepository struct {
	BaseRepository
}

// newPgxDashboardRepository creates a new repository for dashboard
// aggregation queries.
func newPgxDashboardRepository(pool *pgxpool.Pool) portsrepo.DashboardRepository {
	return &PgxDashboardRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxDashboardRepository implements portsrepo.DashboardRepository
var _ portsrepo.DashboardRepository = (*PgxDashboardRepository)(nil)

// SumEntriesSince sums amounts of entries of the given kind dated at or
// after since. Returns zero for an empty window.
func (r *PgxDashboardRepository) SumEntriesSince(ctx context.Context, kind domain.EntryKind, since time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM entries
		WHERE kind = $1 AND occurred_at >= $2;
	`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, models.EntryKind(kind), since).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s entries: %w", kind, err)
	}
	return total, nil
}

// RecentEntriesSince returns up to limit entries of the given kind dated at
// or after since, newest first with entry id as the tie-break.
func (r *PgxDashboardRepository) RecentEntriesSince(ctx context.Context, kind domain.EntryKind, since time.Time, limit int) ([]domain.Entry, error) {
	query := `
		SELECT e.entry_id, e.kind, e.occurred_at, e.category, e.amount, e.description, e.account_id, e.created_at, e.last_updated_at,
		       COALESCE(a.name, '') AS account_name
		FROM entries e
		LEFT JOIN accounts a ON a.account_id = e.account_id
		WHERE e.kind = $1 AND e.occurred_at >= $2
		ORDER BY e.occurred_at DESC, e.entry_id DESC
		LIMIT $3;
	`

	rows, err := r.Pool.Query(ctx, query, models.EntryKind(kind), since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent %s entries: %w", kind, err)
	}
	defer rows.Close()

	entries := make([]domain.Entry, 0, limit)
	for rows.Next() {
		var modelEntry models.Entry
		var accountName string
		err := rows.Scan(
			&modelEntry.EntryID,
			&modelEntry.Kind,
			&modelEntry.OccurredAt,
			&modelEntry.Category,
			&modelEntry.Amount,
			&modelEntry.Description,
			&modelEntry.AccountID,
			&modelEntry.CreatedAt,
			&modelEntry.LastUpdatedAt,
			&accountName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recent entry row: %w", err)
		}
		entry := mapping.ToDomainEntry(modelEntry)
		entry.AccountName = accountName
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent entry rows: %w", err)
	}

	return entries, nil
}

// LoanTotals returns the all-time sums of GIVEN and TAKEN loans in a single
// query.
func (r *PgxDashboardRepository) LoanTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN direction = 'GIVEN' THEN amount ELSE 0 END), 0) AS total_given,
			COALESCE(SUM(CASE WHEN direction = 'TAKEN' THEN amount ELSE 0 END), 0) AS total_taken
		FROM loans;
	`

	var given, taken decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query).Scan(&given, &taken); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to compute loan totals: %w", err)
	}
	return given, taken, nil
}
