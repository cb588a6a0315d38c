package mapping

import (
	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/fintrack-labs/expense_tracker_api/internal/models"
)

// ToModelInvestmentAccount converts a domain InvestmentAccount to its model
func ToModelInvestmentAccount(d domain.InvestmentAccount) models.InvestmentAccount {
	return models.InvestmentAccount{
		AccountID:   d.AccountID,
		CompanyName: d.CompanyName,
		AgentName:   d.AgentName,
		Status:      d.Status,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainInvestmentAccount converts a model InvestmentAccount to its domain type
func ToDomainInvestmentAccount(m models.InvestmentAccount) domain.InvestmentAccount {
	return domain.InvestmentAccount{
		AccountID:   m.AccountID,
		CompanyName: m.CompanyName,
		AgentName:   m.AgentName,
		Status:      m.Status,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToModelInvestmentTransaction converts a domain InvestmentTransaction to its model
func ToModelInvestmentTransaction(d domain.InvestmentTransaction) models.InvestmentTransaction {
	return models.InvestmentTransaction{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Date:          d.Date,
		Amount:        d.Amount,
		Profit:        d.Profit,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainInvestmentTransaction converts a model InvestmentTransaction to its domain type
func ToDomainInvestmentTransaction(m models.InvestmentTransaction) domain.InvestmentTransaction {
	return domain.InvestmentTransaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Date:          m.Date,
		Amount:        m.Amount,
		Profit:        m.Profit,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
