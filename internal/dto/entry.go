package dto

import (
	"time"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/fintrack-labs/expense_tracker_api/internal/utils/numeric"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the data needed to create a ledger entry.
// Amount and accountID go through tolerant coercion: amounts accept
// formatted currency strings, references accept numeric strings or null.
type CreateEntryRequest struct {
	OccurredAt  time.Time          `json:"occurredAt" binding:"required"`
	Category    string             `json:"category" binding:"required"`
	Amount      numeric.Amount     `json:"amount"`
	Description *string            `json:"description"`
	AccountID   numeric.AccountRef `json:"accountID"`
}

// UpdateEntryRequest defines the partial fields allowed when updating an
// entry. Absent fields are left unchanged; an accountID explicitly set to
// null detaches the entry from its account.
type UpdateEntryRequest struct {
	OccurredAt  *time.Time         `json:"occurredAt"`
	Category    *string            `json:"category"`
	Amount      *numeric.Amount    `json:"amount"`
	Description *string            `json:"description"`
	AccountID   numeric.AccountRef `json:"accountID"`
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	Limit int `form:"limit,default=100"`
	Skip  int `form:"skip,default=0"`
}

// EntryResponse defines the data returned for a ledger entry.
type EntryResponse struct {
	EntryID       int64            `json:"entryID"`
	Kind          domain.EntryKind `json:"kind"`
	OccurredAt    time.Time        `json:"occurredAt"`
	Category      string           `json:"category"`
	Amount        decimal.Decimal  `json:"amount"`
	Description   string           `json:"description"`
	AccountID     *int64           `json:"accountID"`
	AccountName   string           `json:"accountName,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse DTO
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:       e.EntryID,
		Kind:          e.Kind,
		OccurredAt:    e.OccurredAt,
		Category:      e.Category,
		Amount:        e.Amount,
		Description:   e.Description,
		AccountID:     e.AccountID,
		AccountName:   e.AccountName,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListEntryResponse converts a slice of domain.Entry to response DTOs
func ToListEntryResponse(entries []domain.Entry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return res
}
