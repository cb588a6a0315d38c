package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a money holding account (cash, bank, credit card...).
// This is the primary representation used by services.
//
// Balance is derived-but-stored: it always equals the opening balance plus
// the signed effects of every ledger entry that currently references the
// account. It is maintained incrementally by the ledger service, never
// recomputed from scratch.
type Account struct {
	AccountID   int64           `json:"accountID"`
	Name        string          `json:"name"`
	AccountType string          `json:"accountType"` // Free-form category, e.g. 'Cash', 'Bank'
	Balance     decimal.Decimal `json:"balance"`
	AuditFields
}
