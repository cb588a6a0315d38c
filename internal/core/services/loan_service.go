package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrack-labs/expense_tracker_api/internal/apperrors"
	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	portsrepo "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/repositories"
	portssvc "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/services"
	"github.com/fintrack-labs/expense_tracker_api/internal/dto"
)

// loanService implements LoanSvcFacade. Loans are standalone records with
// no account link and no balance side effects.
type loanService struct {
	BaseService
	loanRepo portsrepo.LoanRepositoryFacade
}

// NewLoanService creates a new LoanService.
func NewLoanService(repo portsrepo.LoanRepositoryFacade) portssvc.LoanSvcFacade {
	return &loanService{loanRepo: repo}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

func (s *loanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error) {
	if !req.Amount.Present {
		return nil, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	if req.Amount.Value.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	loan := domain.Loan{
		PersonName: req.PersonName,
		Direction:  req.Direction,
		Amount:     req.Amount.Value,
		Date:       req.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.Description != nil {
		loan.Description = *req.Description
	}

	loanID, err := s.loanRepo.SaveLoan(ctx, loan)
	if err != nil {
		s.LogError(ctx, err, "Failed to save loan", slog.String("person", req.PersonName))
		return nil, err
	}
	loan.LoanID = loanID

	s.LogInfo(ctx, "Loan created successfully", slog.Int64("loan_id", loanID))
	return &loan, nil
}

func (s *loanService) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListLoans(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans")
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	if loans == nil {
		return []domain.Loan{}, nil
	}
	return loans, nil
}

func (s *loanService) UpdateLoan(ctx context.Context, loanID int64, req dto.UpdateLoanRequest) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find loan for update", slog.Int64("loan_id", loanID))
		}
		return nil, err
	}

	if req.PersonName != nil {
		loan.PersonName = *req.PersonName
	}
	if req.Direction != nil {
		loan.Direction = *req.Direction
	}
	if req.Amount != nil {
		if req.Amount.Value.IsNegative() {
			return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
		}
		loan.Amount = req.Amount.Value
	}
	if req.Date != nil {
		loan.Date = *req.Date
	}
	if req.Description != nil {
		loan.Description = *req.Description
	}

	loan.LastUpdatedAt = time.Now().UTC()

	if err := s.loanRepo.UpdateLoan(ctx, *loan); err != nil {
		s.LogError(ctx, err, "Failed to update loan", slog.Int64("loan_id", loanID))
		return nil, err
	}

	s.LogInfo(ctx, "Loan updated successfully", slog.Int64("loan_id", loanID))
	return loan, nil
}

func (s *loanService) DeleteLoan(ctx context.Context, loanID int64) error {
	if _, err := s.loanRepo.FindLoanByID(ctx, loanID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find loan for delete", slog.Int64("loan_id", loanID))
		}
		return err
	}

	if err := s.loanRepo.DeleteLoan(ctx, loanID); err != nil {
		s.LogError(ctx, err, "Failed to delete loan", slog.Int64("loan_id", loanID))
		return err
	}

	s.LogInfo(ctx, "Loan deleted successfully", slog.Int64("loan_id", loanID))
	return nil
}
