package services

import (
	portsrepo "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/repositories"
	portssvc "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialized
// dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:    NewAccountService(repos.AccountRepo),
		Ledger:     NewLedgerService(repos.EntryRepo, repos.AccountRepo),
		Loan:       NewLoanService(repos.LoanRepo),
		Investment: NewInvestmentService(repos.InvestmentRepo),
		Dashboard:  NewDashboardService(repos.DashboardRepo),
	}
}
