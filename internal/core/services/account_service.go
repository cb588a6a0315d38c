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
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now().UTC()

	// Opening balance defaults to zero when not supplied.
	balance := decimal.Zero
	if req.Balance.Present {
		balance = req.Balance.Value
	}

	account := domain.Account{
		Name:        req.Name,
		AccountType: req.AccountType,
		Balance:     balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	accountID, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("name", req.Name))
		return nil, err
	}
	account.AccountID = accountID

	s.LogInfo(ctx, "Account created successfully", slog.Int64("account_id", accountID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.Int64("account_id", accountID))
		}
		return nil, err // Propagate error (including NotFound)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil // Return empty slice if repo returns nil
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err // GetAccountByID already logs errors
	}

	// Apply updates
	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for account update", slog.Int64("account_id", accountID))
		return account, nil
	}

	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.Int64("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", slog.Int64("account_id", accountID))
	return account, nil
}

// DeleteAccount removes an account. Entries referencing it are detached,
// not deleted; they remain as unlinked history with no balance effect.
func (s *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	if _, err := s.GetAccountByID(ctx, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.Int64("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted successfully", slog.Int64("account_id", accountID))
	return nil
}

// AdjustBalance adds a signed amount to the stored balance. This is a
// manual correction outside the ledger; it shifts the account's effective
// opening balance rather than creating an entry.
func (s *accountService) AdjustBalance(ctx context.Context, accountID int64, req dto.AdjustBalanceRequest) (*domain.Account, error) {
	if !req.Amount.Present {
		return nil, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.AdjustBalance(ctx, accountID, req.Amount.Value, time.Now().UTC())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to adjust account balance", slog.Int64("account_id", accountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account balance adjusted",
		slog.Int64("account_id", accountID),
		slog.String("delta", req.Amount.Value.String()))
	return account, nil
}
