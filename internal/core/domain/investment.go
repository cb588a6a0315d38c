package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentAccount tracks an investment held with an external agent.
type InvestmentAccount struct {
	AccountID   int64  `json:"accountID"`
	CompanyName string `json:"companyName"`
	AgentName   string `json:"agentName"`
	Status      string `json:"status"` // e.g. 'ACTIVE', 'CLOSED'
	AuditFields
}

// InvestmentTransaction is a deposit or withdrawal against an investment
// account. Profit is optional and supplied by the caller on withdrawals.
// Transactions are cascade-deleted with their parent account.
type InvestmentTransaction struct {
	TransactionID int64            `json:"transactionID"`
	AccountID     int64            `json:"accountID"`
	Date          time.Time        `json:"date"`
	Amount        decimal.Decimal  `json:"amount"`
	Profit        *decimal.Decimal `json:"profit"`
	AuditFields
}
