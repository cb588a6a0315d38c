package services

import (
	"context"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/fintrack-labs/expense_tracker_api/internal/dto"
)

// LoanSvcFacade defines the service operations for loan records.
type LoanSvcFacade interface {
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error)
	ListLoans(ctx context.Context) ([]domain.Loan, error)
	UpdateLoan(ctx context.Context, loanID int64, req dto.UpdateLoanRequest) (*domain.Loan, error)
	DeleteLoan(ctx context.Context, loanID int64) error
}
