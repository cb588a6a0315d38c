package repositories

import (
	"context"

	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryReader defines read operations for ledger entries
type EntryReader interface {
	// FindEntryByID retrieves a specific entry of the given kind.
	FindEntryByID(ctx context.Context, kind domain.EntryKind, entryID int64) (*domain.Entry, error)

	// ListEntries retrieves a paginated list of entries of the given kind,
	// most recent first, with account names joined in.
	ListEntries(ctx context.Context, kind domain.EntryKind, limit int, offset int) ([]domain.Entry, error)
}

// EntryWriter defines the atomic entry mutations. Each call commits the row
// write and the supplied balance deltas in a single database transaction:
// either everything is persisted or nothing is.
//
// The revert map carries deltas undoing the entry's prior effect; accounts
// missing on that side are tolerated (they may have been deleted
// independently) and their deltas dropped. The apply map carries the
// entry's new effect; a missing account there aborts the whole mutation
// with apperrors.ErrAccountNotFound.
type EntryWriter interface {
	// SaveEntry inserts a new entry and applies its balance effect.
	SaveEntry(ctx context.Context, entry domain.Entry, apply map[int64]decimal.Decimal) (int64, error)

	// UpdateEntry rewrites an entry, reverting its old effect and applying
	// the new one.
	UpdateEntry(ctx context.Context, entry domain.Entry, revert map[int64]decimal.Decimal, apply map[int64]decimal.Decimal) error

	// DeleteEntry removes an entry, reverting its effect.
	DeleteEntry(ctx context.Context, kind domain.EntryKind, entryID int64, revert map[int64]decimal.Decimal) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
