package mapping

import (
	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/fintrack-labs/expense_tracker_api/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry
func ToModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:     d.EntryID,
		Kind:        models.EntryKind(d.Kind),
		OccurredAt:  d.OccurredAt,
		Category:    d.Category,
		Amount:      d.Amount,
		Description: d.Description,
		AccountID:   d.AccountID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainEntry converts a model Entry to a domain Entry
func ToDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:     m.EntryID,
		Kind:        domain.EntryKind(m.Kind),
		OccurredAt:  m.OccurredAt,
		Category:    m.Category,
		Amount:      m.Amount,
		Description: m.Description,
		AccountID:   m.AccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
