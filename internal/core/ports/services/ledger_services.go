package services

import (
	"context"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/fintrack-labs/expense_tracker_api/internal/dto"
)

// LedgerSvcFacade defines the service operations for ledger entries
// (expenses and income). All mutations go through the balance
// reconciliation engine so the linked account balance stays consistent.
type LedgerSvcFacade interface {
	CreateEntry(ctx context.Context, kind domain.EntryKind, req dto.CreateEntryRequest) (*domain.Entry, error)
	GetEntryByID(ctx context.Context, kind domain.EntryKind, entryID int64) (*domain.Entry, error)
	ListEntries(ctx context.Context, kind domain.EntryKind, params dto.ListEntriesParams) ([]domain.Entry, error)
	UpdateEntry(ctx context.Context, kind domain.EntryKind, entryID int64, req dto.UpdateEntryRequest) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, kind domain.EntryKind, entryID int64) error
}
