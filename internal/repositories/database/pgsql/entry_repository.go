package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintrack-labs/expense_tracker_api/internal/apperrors"
	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	portsrepo "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/repositories"
	"github.com/fintrack-labs/expense_tracker_api/internal/models"
	"github.com/fintrack-labs/expense_tracker_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxEntryRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTransactionSupport
}

// newPgxEntryRepository creates a new repository for ledger entry data. The
// account repository is injected so balance updates run inside the same
// transaction as the entry row writes.
func newPgxEntryRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTransactionSupport) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

// reconcileBalancesInTx locks the union of accounts touched by a mutation
// and applies the merged deltas. Revert-side deltas whose account no longer
// exists are dropped; an apply-side delta on a missing account aborts the
// mutation with ErrAccountNotFound.
func (r *PgxEntryRepository) reconcileBalancesInTx(ctx context.Context, tx pgx.Tx, revert, apply map[int64]decimal.Decimal, now time.Time) error {
	ids := make([]int64, 0, len(revert)+len(apply))
	seen := make(map[int64]bool, len(revert)+len(apply))
	for id := range revert {
		if !seen[id] {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	for id := range apply {
		if !seen[id] {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	if len(ids) == 0 {
		return nil
	}

	locked, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return fmt.Errorf("failed to lock accounts for update: %w", err)
	}

	changes := make(map[int64]decimal.Decimal, len(ids))
	for id, delta := range revert {
		if _, ok := locked[id]; !ok {
			continue // Account deleted since the entry was written; nothing to revert.
		}
		changes[id] = changes[id].Add(delta)
	}
	for id, delta := range apply {
		if _, ok := locked[id]; !ok {
			return fmt.Errorf("%w: id %d", apperrors.ErrAccountNotFound, id)
		}
		changes[id] = changes[id].Add(delta)
	}

	if err := r.accountRepo.ApplyBalanceChangesInTx(ctx, tx, changes, now); err != nil {
		return fmt.Errorf("failed to apply balance changes: %w", err)
	}
	return nil
}

// SaveEntry inserts an entry row and applies its balance effect in one
// database transaction.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry, apply map[int64]decimal.Decimal) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	modelEntry := mapping.ToModelEntry(entry)

	if err := r.reconcileBalancesInTx(ctx, tx, nil, apply, modelEntry.LastUpdatedAt); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO entries (kind, occurred_at, category, amount, description, account_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING entry_id;
	`

	var entryID int64
	err = tx.QueryRow(ctx, query,
		modelEntry.Kind,
		modelEntry.OccurredAt,
		modelEntry.Category,
		modelEntry.Amount,
		modelEntry.Description,
		modelEntry.AccountID,
		modelEntry.CreatedAt,
		modelEntry.LastUpdatedAt,
	).Scan(&entryID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert %s entry: %w", modelEntry.Kind, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return entryID, nil
}

// UpdateEntry rewrites an entry row, reverting its old balance effect and
// applying the new one in the same transaction.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry, revert map[int64]decimal.Decimal, apply map[int64]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelEntry := mapping.ToModelEntry(entry)

	if err := r.reconcileBalancesInTx(ctx, tx, revert, apply, modelEntry.LastUpdatedAt); err != nil {
		return err
	}

	query := `
		UPDATE entries
		SET occurred_at = $3, category = $4, amount = $5, description = $6, account_id = $7, last_updated_at = $8
		WHERE entry_id = $1 AND kind = $2;
	`

	tag, err := tx.Exec(ctx, query,
		modelEntry.EntryID,
		modelEntry.Kind,
		modelEntry.OccurredAt,
		modelEntry.Category,
		modelEntry.Amount,
		modelEntry.Description,
		modelEntry.AccountID,
		modelEntry.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s entry %d: %w", modelEntry.Kind, modelEntry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// DeleteEntry removes an entry row and reverts its balance effect in the
// same transaction.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, kind domain.EntryKind, entryID int64, revert map[int64]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.reconcileBalancesInTx(ctx, tx, revert, nil, time.Now().UTC()); err != nil {
		return err
	}

	query := `DELETE FROM entries WHERE entry_id = $1 AND kind = $2;`

	tag, err := tx.Exec(ctx, query, entryID, models.EntryKind(kind))
	if err != nil {
		return fmt.Errorf("failed to delete %s entry %d: %w", kind, entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a single entry of the given kind with its account
// name joined in.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, kind domain.EntryKind, entryID int64) (*domain.Entry, error) {
	query := `
		SELECT e.entry_id, e.kind, e.occurred_at, e.category, e.amount, e.description, e.account_id, e.created_at, e.last_updated_at,
		       COALESCE(a.name, '') AS account_name
		FROM entries e
		LEFT JOIN accounts a ON a.account_id = e.account_id
		WHERE e.entry_id = $1 AND e.kind = $2;
	`

	var modelEntry models.Entry
	var accountName string
	err := r.Pool.QueryRow(ctx, query, entryID, models.EntryKind(kind)).Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s entry %d: %w", kind, entryID, err)
	}

	entry := mapping.ToDomainEntry(modelEntry)
	entry.AccountName = accountName
	return &entry, nil
}

// ListEntries retrieves a page of entries of the given kind, most recent
// first, with account names joined in.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, kind domain.EntryKind, limit int, offset int) ([]domain.Entry, error) {
	query := `
		SELECT e.entry_id, e.kind, e.occurred_at, e.category, e.amount, e.description, e.account_id, e.created_at, e.last_updated_at,
		       COALESCE(a.name, '') AS account_name
		FROM entries e
		LEFT JOIN accounts a ON a.account_id = e.account_id
		WHERE e.kind = $1
		ORDER BY e.occurred_at DESC, e.entry_id DESC
		LIMIT $2 OFFSET $3;
	`

	rows, err := r.Pool.Query(ctx, query, models.EntryKind(kind), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s entries: %w", kind, err)
	}
	defer rows.Close()

	entries := make([]domain.Entry, 0)
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
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entry := mapping.ToDomainEntry(modelEntry)
		entry.AccountName = accountName
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}

	return entries, nil
}
