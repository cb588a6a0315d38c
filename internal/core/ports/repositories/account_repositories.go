package repositories

import (
	"context"
	"time"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account and returns its generated id.
	SaveAccount(ctx context.Context, account domain.Account) (int64, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. Ledger entries referencing it are
	// detached (their account reference set to NULL), not deleted.
	DeleteAccount(ctx context.Context, accountID int64) error

	// AdjustBalance adds a signed delta to the stored balance and returns
	// the updated account.
	AdjustBalance(ctx context.Context, accountID int64, delta decimal.Decimal, now time.Time) (*domain.Account, error)
}

// AccountTransactionSupport defines operations used by entry mutations that
// must update balances atomically with the entry row.
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks them for update
	// within a transaction. Missing ids are simply absent from the result.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error)

	// ApplyBalanceChangesInTx adds the given deltas to account balances
	// within a transaction. Zero deltas are skipped.
	ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, changes map[int64]decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
