package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is the DB representation of a loan record.
type Loan struct {
	LoanID      int64           `db:"loan_id"`
	PersonName  string          `db:"person_name"`
	Direction   string          `db:"direction"` // GIVEN or TAKEN
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"date"`
	Description string          `db:"description"`
	AuditFields
}
