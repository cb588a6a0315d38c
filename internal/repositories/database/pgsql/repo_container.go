package pgsql

import (
	portsrepo "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories against one pool. The
// entry repository receives the account repository so entry mutations can
// update balances inside their own transaction.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	entryRepo := newPgxEntryRepository(dbPool, accountRepo)
	loanRepo := newPgxLoanRepository(dbPool)
	investmentRepo := newPgxInvestmentRepository(dbPool)
	dashboardRepo := newPgxDashboardRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:    accountRepo,
		EntryRepo:      entryRepo,
		LoanRepo:       loanRepo,
		InvestmentRepo: investmentRepo,
		DashboardRepo:  dashboardRepo,
	}
}
