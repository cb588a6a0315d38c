package dto

import (
	"time"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/fintrack-labs/expense_tracker_api/internal/utils/numeric"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string         `json:"name" binding:"required"`
	AccountType string         `json:"accountType" binding:"required"`
	Balance     numeric.Amount `json:"balance"` // Optional opening balance, defaults to 0
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	AccountType *string `json:"accountType"`
}

// AdjustBalanceRequest carries a signed delta added to the stored balance.
type AdjustBalanceRequest struct {
	Amount numeric.Amount `json:"amount"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     int64           `json:"accountID"`
	Name          string          `json:"name"`
	AccountType   string          `json:"accountType"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
