package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanDirection indicates whether money was lent out or borrowed.
type LoanDirection string

const (
	LoanGiven LoanDirection = "GIVEN"
	LoanTaken LoanDirection = "TAKEN"
)

// Loan is a standalone record of money lent or borrowed. Loans are not
// bound to an account and never affect balances; they exist for
// net-position reporting only.
type Loan struct {
	LoanID      int64           `json:"loanID"`
	PersonName  string          `json:"personName"`
	Direction   LoanDirection   `json:"direction"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	AuditFields
}
