package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentAccount is the DB representation of an investment account.
type InvestmentAccount struct {
	AccountID   int64  `db:"investment_account_id"`
	CompanyName string `db:"company_name"`
	AgentName   string `db:"agent_name"`
	Status      string `db:"status"`
	AuditFields
}

// InvestmentTransaction is the DB representation of an investment
// transaction. Rows are removed together with their parent account.
type InvestmentTransaction struct {
	TransactionID int64            `db:"transaction_id"`
	AccountID     int64            `db:"investment_account_id"`
	Date          time.Time        `db:"date"`
	Amount        decimal.Decimal  `db:"amount"`
	Profit        *decimal.Decimal `db:"profit"` // Nullable
	AuditFields
}
