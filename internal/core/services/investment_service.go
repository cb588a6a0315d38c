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

// investmentService implements InvestmentSvcFacade.
type investmentService struct {
	BaseService
	investmentRepo portsrepo.InvestmentRepositoryFacade
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(repo portsrepo.InvestmentRepositoryFacade) portssvc.InvestmentSvcFacade {
	return &investmentService{investmentRepo: repo}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) CreateInvestmentAccount(ctx context.Context, req dto.CreateInvestmentAccountRequest) (*domain.InvestmentAccount, error) {
	now := time.Now().UTC()

	status := req.Status
	if status == "" {
		status = "ACTIVE"
	}

	account := domain.InvestmentAccount{
		CompanyName: req.CompanyName,
		AgentName:   req.AgentName,
		Status:      status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	accountID, err := s.investmentRepo.SaveInvestmentAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to save investment account", slog.String("company", req.CompanyName))
		return nil, err
	}
	account.AccountID = accountID

	s.LogInfo(ctx, "Investment account created successfully", slog.Int64("investment_account_id", accountID))
	return &account, nil
}

func (s *investmentService) ListInvestmentAccounts(ctx context.Context) ([]domain.InvestmentAccount, error) {
	accounts, err := s.investmentRepo.ListInvestmentAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investment accounts")
		return nil, fmt.Errorf("failed to list investment accounts: %w", err)
	}
	if accounts == nil {
		return []domain.InvestmentAccount{}, nil
	}
	return accounts, nil
}

func (s *investmentService) UpdateInvestmentAccount(ctx context.Context, accountID int64, req dto.UpdateInvestmentAccountRequest) (*domain.InvestmentAccount, error) {
	account, err := s.investmentRepo.FindInvestmentAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find investment account for update", slog.Int64("investment_account_id", accountID))
		}
		return nil, err
	}

	// Full replace of the mutable fields.
	account.CompanyName = req.CompanyName
	account.AgentName = req.AgentName
	account.Status = req.Status
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.investmentRepo.UpdateInvestmentAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update investment account", slog.Int64("investment_account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Investment account updated successfully", slog.Int64("investment_account_id", accountID))
	return account, nil
}

// DeleteInvestmentAccount removes the account and all its transactions in
// one atomic operation.
func (s *investmentService) DeleteInvestmentAccount(ctx context.Context, accountID int64) error {
	if _, err := s.investmentRepo.FindInvestmentAccountByID(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find investment account for delete", slog.Int64("investment_account_id", accountID))
		}
		return err
	}

	if err := s.investmentRepo.DeleteInvestmentAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete investment account", slog.Int64("investment_account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Investment account deleted with its transactions", slog.Int64("investment_account_id", accountID))
	return nil
}

func (s *investmentService) CreateInvestmentTransaction(ctx context.Context, req dto.CreateInvestmentTransactionRequest) (*domain.InvestmentTransaction, error) {
	if !req.Amount.Present {
		return nil, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}

	// The parent account must exist; transactions cannot be orphaned.
	if _, err := s.investmentRepo.FindInvestmentAccountByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: investment account %d", apperrors.ErrAccountNotFound, req.AccountID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.InvestmentTransaction{
		AccountID: req.AccountID,
		Date:      req.Date,
		Amount:    req.Amount.Value,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.Profit != nil {
		profit := req.Profit.Value
		txn.Profit = &profit
	}

	transactionID, err := s.investmentRepo.SaveInvestmentTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to save investment transaction", slog.Int64("investment_account_id", req.AccountID))
		return nil, err
	}
	txn.TransactionID = transactionID

	s.LogInfo(ctx, "Investment transaction created successfully",
		slog.Int64("transaction_id", transactionID),
		slog.Int64("investment_account_id", req.AccountID))
	return &txn, nil
}

func (s *investmentService) ListInvestmentTransactions(ctx context.Context) ([]domain.InvestmentTransaction, error) {
	txns, err := s.investmentRepo.ListInvestmentTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investment transactions")
		return nil, fmt.Errorf("failed to list investment transactions: %w", err)
	}
	if txns == nil {
		return []domain.InvestmentTransaction{}, nil
	}
	return txns, nil
}

func (s *investmentService) DeleteInvestmentTransaction(ctx context.Context, transactionID int64) error {
	if _, err := s.investmentRepo.FindInvestmentTransactionByID(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find investment transaction for delete", slog.Int64("transaction_id", transactionID))
		}
		return err
	}

	if err := s.investmentRepo.DeleteInvestmentTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete investment transaction", slog.Int64("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Investment transaction deleted successfully", slog.Int64("transaction_id", transactionID))
	return nil
}
