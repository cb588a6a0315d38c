package dto

import (
	"time"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/fintrack-labs/expense_tracker_api/internal/utils/numeric"
	"github.com/shopspring/decimal"
)

// CreateInvestmentAccountRequest defines the data needed to create an
// investment account.
type CreateInvestmentAccountRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	AgentName   string `json:"agentName" binding:"required"`
	Status      string `json:"status"` // Defaults to ACTIVE
}

// UpdateInvestmentAccountRequest replaces the mutable fields of an
// investment account.
type UpdateInvestmentAccountRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	AgentName   string `json:"agentName" binding:"required"`
	Status      string `json:"status" binding:"required"`
}

// CreateInvestmentTransactionRequest defines the data needed to record an
// investment transaction.
type CreateInvestmentTransactionRequest struct {
	AccountID int64           `json:"accountID" binding:"required"`
	Date      time.Time       `json:"date" binding:"required"`
	Amount    numeric.Amount  `json:"amount"`
	Profit    *numeric.Amount `json:"profit"`
}

// InvestmentAccountResponse defines the data returned for an investment account.
type InvestmentAccountResponse struct {
	AccountID     int64     `json:"accountID"`
	CompanyName   string    `json:"companyName"`
	AgentName     string    `json:"agentName"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// InvestmentTransactionResponse defines the data returned for an investment transaction.
type InvestmentTransactionResponse struct {
	TransactionID int64            `json:"transactionID"`
	AccountID     int64            `json:"accountID"`
	Date          time.Time        `json:"date"`
	Amount        decimal.Decimal  `json:"amount"`
	Profit        *decimal.Decimal `json:"profit"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToInvestmentAccountResponse converts a domain.InvestmentAccount to its DTO
func ToInvestmentAccountResponse(a *domain.InvestmentAccount) InvestmentAccountResponse {
	return InvestmentAccountResponse{
		AccountID:     a.AccountID,
		CompanyName:   a.CompanyName,
		AgentName:     a.AgentName,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		LastUpdatedAt: a.LastUpdatedAt,
	}
}

// ToListInvestmentAccountResponse converts a slice of accounts to DTOs
func ToListInvestmentAccountResponse(accounts []domain.InvestmentAccount) []InvestmentAccountResponse {
	res := make([]InvestmentAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToInvestmentAccountResponse(&accounts[i])
	}
	return res
}

// ToInvestmentTransactionResponse converts a domain.InvestmentTransaction to its DTO
func ToInvestmentTransactionResponse(t *domain.InvestmentTransaction) InvestmentTransactionResponse {
	return InvestmentTransactionResponse{
		TransactionID: t.TransactionID,
		AccountID:     t.AccountID,
		Date:          t.Date,
		Amount:        t.Amount,
		Profit:        t.Profit,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ToListInvestmentTransactionResponse converts a slice of transactions to DTOs
func ToListInvestmentTransactionResponse(txns []domain.InvestmentTransaction) []InvestmentTransactionResponse {
	res := make([]InvestmentTransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToInvestmentTransactionResponse(&txns[i])
	}
	return res
}
