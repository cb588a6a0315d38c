package models

import (
	"github.com/shopspring/decimal"
)

// Account is the DB representation of a money holding account.
type Account struct {
	AccountID   int64           `db:"account_id"`
	Name        string          `db:"name"`
	AccountType string          `db:"account_type"`
	Balance     decimal.Decimal `db:"balance"`
	AuditFields                 // Embed common audit fields
}
