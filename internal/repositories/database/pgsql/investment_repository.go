package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack-labs/expense_tracker_api/internal/apperrors"
	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	portsrepo "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/repositories"
	"github.com/fintrack-labs/expense_tracker_api/internal/models"
	"github.com/fintrack-labs/expense_tracker_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvestmentRepository struct {
	BaseRepository
}

// newPgxInvestmentRepository creates a new repository for investment data.
func newPgxInvestmentRepository(pool *pgxpool.Pool) portsrepo.InvestmentRepositoryFacade {
	return &PgxInvestmentRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxInvestmentRepository implements portsrepo.InvestmentRepositoryFacade
var _ portsrepo.InvestmentRepositoryFacade = (*PgxInvestmentRepository)(nil)

// SaveInvestmentAccount inserts a new investment account and returns its id.
func (r *PgxInvestmentRepository) SaveInvestmentAccount(ctx context.Context, account domain.InvestmentAccount) (int64, error) {
	modelAcc := mapping.ToModelInvestmentAccount(account)

	query := `
		INSERT INTO investment_accounts (company_name, agent_name, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING investment_account_id;
	`

	var accountID int64
	err := r.Pool.QueryRow(ctx, query,
		modelAcc.CompanyName,
		modelAcc.AgentName,
		modelAcc.Status,
		modelAcc.CreatedAt,
		modelAcc.LastUpdatedAt,
	).Scan(&accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to save investment account %q: %w", modelAcc.CompanyName, err)
	}
	return accountID, nil
}

// FindInvestmentAccountByID retrieves an investment account by its id.
func (r *PgxInvestmentRepository) FindInvestmentAccountByID(ctx context.Context, accountID int64) (*domain.InvestmentAccount, error) {
	query := `
		SELECT investment_account_id, company_name, agent_name, status, created_at, last_updated_at
		FROM investment_accounts
		WHERE investment_account_id = $1;
	`

	var modelAcc models.InvestmentAccount
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&modelAcc.AccountID,
		&modelAcc.CompanyName,
		&modelAcc.AgentName,
		&modelAcc.Status,
		&modelAcc.CreatedAt,
		&modelAcc.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find investment account %d: %w", accountID, err)
	}

	account := mapping.ToDomainInvestmentAccount(modelAcc)
	return &account, nil
}

// ListInvestmentAccounts retrieves all investment accounts.
func (r *PgxInvestmentRepository) ListInvestmentAccounts(ctx context.Context) ([]domain.InvestmentAccount, error) {
	query := `
		SELECT investment_account_id, company_name, agent_name, status, created_at, last_updated_at
		FROM investment_accounts
		ORDER BY investment_account_id;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment accounts: %w", err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InvestmentAccount, error) {
		var m models.InvestmentAccount
		err := row.Scan(&m.AccountID, &m.CompanyName, &m.AgentName, &m.Status, &m.CreatedAt, &m.LastUpdatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan investment account rows: %w", err)
	}

	accounts := make([]domain.InvestmentAccount, len(modelAccounts))
	for i, m := range modelAccounts {
		accounts[i] = mapping.ToDomainInvestmentAccount(m)
	}
	return accounts, nil
}

// UpdateInvestmentAccount updates an existing investment account.
func (r *PgxInvestmentRepository) UpdateInvestmentAccount(ctx context.Context, account domain.InvestmentAccount) error {
	modelAcc := mapping.ToModelInvestmentAccount(account)

	query := `
		UPDATE investment_accounts
		SET company_name = $2, agent_name = $3, status = $4, last_updated_at = $5
		WHERE investment_account_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.CompanyName,
		modelAcc.AgentName,
		modelAcc.Status,
		modelAcc.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update investment account %d: %w", modelAcc.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInvestmentAccount removes an investment account and all its
// transactions in one database transaction.
func (r *PgxInvestmentRepository) DeleteInvestmentAccount(ctx context.Context, accountID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM investment_transactions WHERE investment_account_id = $1;`, accountID); err != nil {
		return fmt.Errorf("failed to delete transactions of investment account %d: %w", accountID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM investment_accounts WHERE investment_account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete investment account %d: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// SaveInvestmentTransaction inserts a new investment transaction and returns
// its id.
func (r *PgxInvestmentRepository) SaveInvestmentTransaction(ctx context.Context, txn domain.InvestmentTransaction) (int64, error) {
	modelTxn := mapping.ToModelInvestmentTransaction(txn)

	query := `
		INSERT INTO investment_transactions (investment_account_id, date, amount, profit, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING transaction_id;
	`

	var transactionID int64
	err := r.Pool.QueryRow(ctx, query,
		modelTxn.AccountID,
		modelTxn.Date,
		modelTxn.Amount,
		modelTxn.Profit,
		modelTxn.CreatedAt,
		modelTxn.LastUpdatedAt,
	).Scan(&transactionID)
	if err != nil {
		return 0, fmt.Errorf("failed to save investment transaction for account %d: %w", modelTxn.AccountID, err)
	}
	return transactionID, nil
}

// FindInvestmentTransactionByID retrieves an investment transaction by id.
func (r *PgxInvestmentRepository) FindInvestmentTransactionByID(ctx context.Context, transactionID int64) (*domain.InvestmentTransaction, error) {
	query := `
		SELECT transaction_id, investment_account_id, date, amount, profit, created_at, last_updated_at
		FROM investment_transactions
		WHERE transaction_id = $1;
	`

	var modelTxn models.InvestmentTransaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&modelTxn.TransactionID,
		&modelTxn.AccountID,
		&modelTxn.Date,
		&modelTxn.Amount,
		&modelTxn.Profit,
		&modelTxn.CreatedAt,
		&modelTxn.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find investment transaction %d: %w", transactionID, err)
	}

	txn := mapping.ToDomainInvestmentTransaction(modelTxn)
	return &txn, nil
}

// ListInvestmentTransactions retrieves all investment transactions, newest
// date first.
func (r *PgxInvestmentRepository) ListInvestmentTransactions(ctx context.Context) ([]domain.InvestmentTransaction, error) {
	query := `
		SELECT transaction_id, investment_account_id, date, amount, profit, created_at, last_updated_at
		FROM investment_transactions
		ORDER BY date DESC, transaction_id DESC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InvestmentTransaction, error) {
		var m models.InvestmentTransaction
		err := row.Scan(&m.TransactionID, &m.AccountID, &m.Date, &m.Amount, &m.Profit, &m.CreatedAt, &m.LastUpdatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan investment transaction rows: %w", err)
	}

	txns := make([]domain.InvestmentTransaction, len(modelTxns))
	for i, m := range modelTxns {
		txns[i] = mapping.ToDomainInvestmentTransaction(m)
	}
	return txns, nil
}

// DeleteInvestmentTransaction removes a single investment transaction.
func (r *PgxInvestmentRepository) DeleteInvestmentTransaction(ctx context.Context, transactionID int64) error {
	query := `DELETE FROM investment_transactions WHERE transaction_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete investment transaction %d: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
