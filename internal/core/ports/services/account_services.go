package services

import (
	"context"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/fintrack-labs/expense_tracker_api/internal/dto"
)

// AccountSvcFacade defines the service operations for money holding accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
	AdjustBalance(ctx context.Context, accountID int64, req dto.AdjustBalanceRequest) (*domain.Account, error)
}
