package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes the two ledger entry types.
type EntryKind string

const (
	KindExpense EntryKind = "EXPENSE"
	KindIncome  EntryKind = "INCOME"
)

// Valid reports whether k is a known entry kind.
func (k EntryKind) Valid() bool {
	return k == KindExpense || k == KindIncome
}

// Entry is a single ledger entry: an expense or an income record,
// optionally bound to an account whose balance it affects.
type Entry struct {
	EntryID     int64           `json:"entryID"`
	Kind        EntryKind       `json:"kind"`
	OccurredAt  time.Time       `json:"occurredAt"`
	Category    string          `json:"category"` // e.g. 'Food', 'Salary'
	Amount      decimal.Decimal `json:"amount"`   // Non-negative
	Description string          `json:"description"`
	AccountID   *int64          `json:"accountID"` // Nil means no balance effect
	AccountName string          `json:"accountName,omitempty"`
	AuditFields
}

// SignedEffect returns the entry's effect on its account balance:
// negative for expenses, positive for income.
func (e Entry) SignedEffect() decimal.Decimal {
	if e.Kind == KindExpense {
		return e.Amount.Neg()
	}
	return e.Amount
}
