package dto

import (
	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerDashboardResponse reports the month-to-date total and the most
// recent entries for one ledger kind.
type LedgerDashboardResponse struct {
	MonthTotal decimal.Decimal `json:"currentMonthTotal"`
	Recent     []EntryResponse `json:"recentEntries"`
}

// LoanDashboardResponse reports all-time loan totals and the net position.
type LoanDashboardResponse struct {
	TotalGiven  decimal.Decimal `json:"totalGiven"`
	TotalTaken  decimal.Decimal `json:"totalTaken"`
	NetPosition decimal.Decimal `json:"netPosition"`
}

// ToLedgerDashboardResponse converts a domain.LedgerDashboard to its DTO
func ToLedgerDashboardResponse(d *domain.LedgerDashboard) LedgerDashboardResponse {
	return LedgerDashboardResponse{
		MonthTotal: d.MonthTotal,
		Recent:     ToListEntryResponse(d.Recent),
	}
}

// ToLoanDashboardResponse converts a domain.LoanDashboard to its DTO
func ToLoanDashboardResponse(d *domain.LoanDashboard) LoanDashboardResponse {
	return LoanDashboardResponse{
		TotalGiven:  d.TotalGiven,
		TotalTaken:  d.TotalTaken,
		NetPosition: d.NetPosition,
	}
}
