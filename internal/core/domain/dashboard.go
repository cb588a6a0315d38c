package domain

import "github.com/shopspring/decimal"

// LedgerDashboard summarises one entry kind for the current calendar month:
// the month-to-date total and the five most recent entries in the window.
type LedgerDashboard struct {
	Kind       EntryKind       `json:"kind"`
	MonthTotal decimal.Decimal `json:"monthTotal"`
	Recent     []Entry         `json:"recent"`
}

// LoanDashboard reports all-time loan totals by direction. NetPosition is
// total given minus total taken.
type LoanDashboard struct {
	TotalGiven  decimal.Decimal `json:"totalGiven"`
	TotalTaken  decimal.Decimal `json:"totalTaken"`
	NetPosition decimal.Decimal `json:"netPosition"`
}
