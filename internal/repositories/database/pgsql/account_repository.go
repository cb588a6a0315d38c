package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
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

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account and returns its generated id.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (name, account_type, balance, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING account_id;
	`

	var accountID int64
	err := r.Pool.QueryRow(ctx, query,
		modelAcc.Name,
		modelAcc.AccountType,
		modelAcc.Balance,
		modelAcc.CreatedAt,
		modelAcc.LastUpdatedAt,
	).Scan(&accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to save account %q: %w", modelAcc.Name, err)
	}
	return accountID, nil
}

// FindAccountByID retrieves a single account by its id.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT account_id, name, account_type, balance, created_at, last_updated_at
		FROM accounts
		WHERE account_id = $1;
	`

	var modelAcc models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&modelAcc.AccountID,
		&modelAcc.Name,
		&modelAcc.AccountType,
		&modelAcc.Balance,
		&modelAcc.CreatedAt,
		&modelAcc.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %d: %w", accountID, err)
	}

	account := mapping.ToDomainAccount(modelAcc)
	return &account, nil
}

// ListAccounts retrieves a page of accounts ordered by id.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT account_id, name, account_type, balance, created_at, last_updated_at
		FROM accounts
		ORDER BY account_id
		LIMIT $1 OFFSET $2;
	`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		var m models.Account
		err := row.Scan(&m.AccountID, &m.Name, &m.AccountType, &m.Balance, &m.CreatedAt, &m.LastUpdatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan account rows: %w", err)
	}

	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

// UpdateAccount updates an account's name and type.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $2, account_type = $3, last_updated_at = $4
		WHERE account_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Name,
		modelAcc.AccountType,
		modelAcc.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %d: %w", modelAcc.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccount removes an account row. The entries foreign key is declared
// ON DELETE SET NULL, so ledger entries that referenced the account are
// detached rather than removed.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	query := `DELETE FROM accounts WHERE account_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustBalance adds a signed delta to the stored balance and returns the
// updated account.
func (r *PgxAccountRepository) AdjustBalance(ctx context.Context, accountID int64, delta decimal.Decimal, now time.Time) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3
		WHERE account_id = $1
		RETURNING account_id, name, account_type, balance, created_at, last_updated_at;
	`

	var modelAcc models.Account
	err := r.Pool.QueryRow(ctx, query, accountID, delta, now).Scan(
		&modelAcc.AccountID,
		&modelAcc.Name,
		&modelAcc.AccountType,
		&modelAcc.Balance,
		&modelAcc.CreatedAt,
		&modelAcc.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to adjust balance of account %d: %w", accountID, err)
	}

	account := mapping.ToDomainAccount(modelAcc)
	return &account, nil
}

// FindAccountsByIDsForUpdate retrieves multiple accounts by IDs and locks the
// rows for update. Must be called within a transaction. Missing ids are not
// an error here; callers decide whether an absence is fatal.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[int64]domain.Account{}, nil
	}

	query := `
		SELECT account_id, name, account_type, balance, created_at, last_updated_at
		FROM accounts
		WHERE account_id = ANY($1)
		FOR UPDATE;
	`

	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for update: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[int64]domain.Account, len(accountIDs))
	for rows.Next() {
		var modelAcc models.Account
		err := rows.Scan(
			&modelAcc.AccountID,
			&modelAcc.Name,
			&modelAcc.AccountType,
			&modelAcc.Balance,
			&modelAcc.CreatedAt,
			&modelAcc.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked account row: %w", err)
		}
		accountsMap[modelAcc.AccountID] = mapping.ToDomainAccount(modelAcc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked account rows: %w", err)
	}

	if len(accountsMap) != len(accountIDs) {
		missing := make([]int64, 0)
		for _, id := range accountIDs {
			if _, found := accountsMap[id]; !found {
				missing = append(missing, id)
			}
		}
		slog.DebugContext(ctx, "Some accounts requested for update lock were not found", "missing_accounts", missing)
	}

	return accountsMap, nil
}

// ApplyBalanceChangesInTx adds the given deltas to account balances within a
// transaction. The rows must already be locked via FindAccountsByIDsForUpdate.
func (r *PgxAccountRepository) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, changes map[int64]decimal.Decimal, now time.Time) error {
	if len(changes) == 0 {
		return nil
	}

	query := `
		UPDATE accounts
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3
		WHERE account_id = $1;
	`

	batch := &pgx.Batch{}
	queued := 0
	for accountID, delta := range changes {
		if delta.IsZero() {
			continue
		}
		batch.Queue(query, accountID, delta, now)
		queued++
	}
	if queued == 0 {
		return nil
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < queued; i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to apply balance change: %w", err)
		}
	}
	return nil
}
