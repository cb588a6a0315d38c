package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind mirrors domain.EntryKind at the storage layer.
type EntryKind string

const (
	KindExpense EntryKind = "EXPENSE"
	KindIncome  EntryKind = "INCOME"
)

// Entry is the DB representation of a ledger entry. Expenses and income
// share one table discriminated by the kind column.
type Entry struct {
	EntryID     int64           `db:"entry_id"`
	Kind        EntryKind       `db:"kind"`
	OccurredAt  time.Time       `db:"occurred_at"`
	Category    string          `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	AccountID   *int64          `db:"account_id"` // Nullable
	AuditFields
}
