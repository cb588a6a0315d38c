package repositories

import (
	"context"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
)

// InvestmentRepositoryFacade defines persistence operations for investment
// accounts and their transactions.
type InvestmentRepositoryFacade interface {
	// SaveInvestmentAccount persists a new investment account.
	SaveInvestmentAccount(ctx context.Context, account domain.InvestmentAccount) (int64, error)

	// FindInvestmentAccountByID retrieves an investment account by id.
	FindInvestmentAccountByID(ctx context.Context, accountID int64) (*domain.InvestmentAccount, error)

	// ListInvestmentAccounts retrieves all investment accounts.
	ListInvestmentAccounts(ctx context.Context) ([]domain.InvestmentAccount, error)

	// UpdateInvestmentAccount updates an existing investment account.
	UpdateInvestmentAccount(ctx context.Context, account domain.InvestmentAccount) error

	// DeleteInvestmentAccount removes an investment account together with
	// all its transactions, atomically.
	DeleteInvestmentAccount(ctx context.Context, accountID int64) error

	// SaveInvestmentTransaction persists a new investment transaction.
	SaveInvestmentTransaction(ctx context.Context, txn domain.InvestmentTransaction) (int64, error)

	// FindInvestmentTransactionByID retrieves an investment transaction by id.
	FindInvestmentTransactionByID(ctx context.Context, transactionID int64) (*domain.InvestmentTransaction, error)

	// ListInvestmentTransactions retrieves all investment transactions,
	// newest date first.
	ListInvestmentTransactions(ctx context.Context) ([]domain.InvestmentTransaction, error)

	// DeleteInvestmentTransaction removes a single investment transaction.
	DeleteInvestmentTransaction(ctx context.Context, transactionID int64) error
}
