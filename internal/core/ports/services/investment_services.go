package services

import (
	"context"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/fintrack-labs/expense_tracker_api/internal/dto"
)

// InvestmentSvcFacade defines the service operations for investment
// accounts and their transactions.
type InvestmentSvcFacade interface {
	CreateInvestmentAccount(ctx context.Context, req dto.CreateInvestmentAccountRequest) (*domain.InvestmentAccount, error)
	ListInvestmentAccounts(ctx context.Context) ([]domain.InvestmentAccount, error)
	UpdateInvestmentAccount(ctx context.Context, accountID int64, req dto.UpdateInvestmentAccountRequest) (*domain.InvestmentAccount, error)
	DeleteInvestmentAccount(ctx context.Context, accountID int64) error

	CreateInvestmentTransaction(ctx context.Context, req dto.CreateInvestmentTransactionRequest) (*domain.InvestmentTransaction, error)
	ListInvestmentTransactions(ctx context.Context) ([]domain.InvestmentTransaction, error)
	DeleteInvestmentTransaction(ctx context.Context, transactionID int64) error
}
