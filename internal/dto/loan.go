package dto

import (
	"time"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/fintrack-labs/expense_tracker_api/internal/utils/numeric"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the data needed to record a loan.
type CreateLoanRequest struct {
	PersonName  string               `json:"personName" binding:"required"`
	Direction   domain.LoanDirection `json:"direction" binding:"required,oneof=GIVEN TAKEN"`
	Amount      numeric.Amount       `json:"amount"`
	Date        time.Time            `json:"date" binding:"required"`
	Description *string              `json:"description"`
}

// UpdateLoanRequest defines the partial fields allowed when updating a loan.
type UpdateLoanRequest struct {
	PersonName  *string               `json:"personName"`
	Direction   *domain.LoanDirection `json:"direction" binding:"omitempty,oneof=GIVEN TAKEN"`
	Amount      *numeric.Amount       `json:"amount"`
	Date        *time.Time            `json:"date"`
	Description *string               `json:"description"`
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	LoanID        int64                `json:"loanID"`
	PersonName    string               `json:"personName"`
	Direction     domain.LoanDirection `json:"direction"`
	Amount        decimal.Decimal      `json:"amount"`
	Date          time.Time            `json:"date"`
	Description   string               `json:"description"`
	CreatedAt     time.Time            `json:"createdAt"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
}

// ToLoanResponse converts a domain.Loan to LoanResponse DTO
func ToLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:        l.LoanID,
		PersonName:    l.PersonName,
		Direction:     l.Direction,
		Amount:        l.Amount,
		Date:          l.Date,
		Description:   l.Description,
		CreatedAt:     l.CreatedAt,
		LastUpdatedAt: l.LastUpdatedAt,
	}
}

// ToListLoanResponse converts a slice of domain.Loan to response DTOs
func ToListLoanResponse(loans []domain.Loan) []LoanResponse {
	res := make([]LoanResponse, len(loans))
	for i := range loans {
		res[i] = ToLoanResponse(&loans[i])
	}
	return res
}
