package mapping

import (
	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/fintrack-labs/expense_tracker_api/internal/models"
)

// ToModelLoan converts a domain Loan to a model Loan
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:      d.LoanID,
		PersonName:  d.PersonName,
		Direction:   string(d.Direction),
		Amount:      d.Amount,
		Date:        d.Date,
		Description: d.Description,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainLoan converts a model Loan to a domain Loan
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:      m.LoanID,
		PersonName:  m.PersonName,
		Direction:   domain.LoanDirection(m.Direction),
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
