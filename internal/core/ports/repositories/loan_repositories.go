package repositories

import (
	"context"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
)

// LoanRepositoryFacade defines persistence operations for loan records.
type LoanRepositoryFacade interface {
	// SaveLoan persists a new loan and returns its generated id.
	SaveLoan(ctx context.Context, loan domain.Loan) (int64, error)

	// FindLoanByID retrieves a loan by its id.
	FindLoanByID(ctx context.Context, loanID int64) (*domain.Loan, error)

	// ListLoans retrieves all loans, newest date first.
	ListLoans(ctx context.Context) ([]domain.Loan, error)

	// UpdateLoan updates an existing loan.
	UpdateLoan(ctx context.Context, loan domain.Loan) error

	// DeleteLoan removes a loan.
	DeleteLoan(ctx context.Context, loanID int64) error
}
