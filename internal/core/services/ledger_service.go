package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrack-labs/expense_tracker_api/internal/apperrors"
	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	portsrepo "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/repositories"
	portssvc "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/services"
	"github.com/fintrack-labs/expense_tracker_api/internal/dto"
	"github.com/shopspring/decimal"
)

// ledgerService owns all entry mutations and the balance reconciliation
// that keeps Account.Balance consistent with the entries referencing it.
//
// Every mutation is reconciled in three steps inside one atomic unit:
//
//  1. Revert: undo the entry's prior effect on its prior account
//     (skipped on create).
//  2. Validate: the new account reference, if any, must exist.
//  3. Apply: apply the entry's new effect on its new account
//     (skipped on delete).
//
// The three-step contract lives here, once, rather than inlined per
// endpoint; the repository commits the deltas together with the row write.
type ledgerService struct {
	BaseService
	entryRepo   portsrepo.EntryRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(entryRepo portsrepo.EntryRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.LedgerSvcFacade {
	return &ledgerService{
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// reconcileDeltas derives the revert and apply balance deltas for a
// mutation from the entry's pre- and post-mutation states. Pass before=nil
// for creates and after=nil for deletes. Entries without an account
// reference contribute nothing.
func reconcileDeltas(before, after *domain.Entry) (revert, apply map[int64]decimal.Decimal) {
	revert = make(map[int64]decimal.Decimal)
	apply = make(map[int64]decimal.Decimal)
	if before != nil && before.AccountID != nil {
		revert[*before.AccountID] = revert[*before.AccountID].Add(before.SignedEffect().Neg())
	}
	if after != nil && after.AccountID != nil {
		apply[*after.AccountID] = apply[*after.AccountID].Add(after.SignedEffect())
	}
	return revert, apply
}

// checkAccountExists validates an apply-side account reference before the
// mutation is attempted. The repository re-checks under lock; this gives
// callers a clean AccountNotFound without opening a transaction.
func (s *ledgerService) checkAccountExists(ctx context.Context, accountID int64) error {
	_, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: id %d", apperrors.ErrAccountNotFound, accountID)
		}
		return fmt.Errorf("failed to verify account %d: %w", accountID, err)
	}
	return nil
}

// CreateEntry creates a new ledger entry and applies its balance effect.
func (s *ledgerService) CreateEntry(ctx context.Context, kind domain.EntryKind, req dto.CreateEntryRequest) (*domain.Entry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown entry kind %q", apperrors.ErrValidation, kind)
	}
	if !req.Amount.Present {
		return nil, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	if req.Amount.Value.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entry := domain.Entry{
		Kind:       kind,
		OccurredAt: req.OccurredAt,
		Category:   req.Category,
		Amount:     req.Amount.Value,
		AccountID:  req.AccountID.ID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}

	if entry.AccountID != nil {
		if err := s.checkAccountExists(ctx, *entry.AccountID); err != nil {
			s.LogWarn(ctx, "Account reference rejected on entry create",
				slog.Int64("account_id", *entry.AccountID),
				slog.String("error", err.Error()))
			return nil, err
		}
	}

	_, apply := reconcileDeltas(nil, &entry)

	entryID, err := s.entryRepo.SaveEntry(ctx, entry, apply)
	if err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("kind", string(kind)))
		return nil, err
	}
	entry.EntryID = entryID

	s.LogInfo(ctx, "Entry created successfully",
		slog.String("kind", string(kind)),
		slog.Int64("entry_id", entryID))
	return &entry, nil
}

// GetEntryByID retrieves a single ledger entry.
func (s *ledgerService) GetEntryByID(ctx context.Context, kind domain.EntryKind, entryID int64) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, kind, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry",
				slog.String("kind", string(kind)),
				slog.Int64("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves a paginated list of entries, most recent first.
func (s *ledgerService) ListEntries(ctx context.Context, kind domain.EntryKind, params dto.ListEntriesParams) ([]domain.Entry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown entry kind %q", apperrors.ErrValidation, kind)
	}
	entries, err := s.entryRepo.ListEntries(ctx, kind, params.Limit, params.Skip)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list %s entries: %w", kind, err)
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	return entries, nil
}

// UpdateEntry applies partial field updates to an entry, moving its
// balance effect as needed. A changed account reference moves the effect
// from the old account to the new one; a reference set to null detaches
// the entry (revert without apply).
func (s *ledgerService) UpdateEntry(ctx context.Context, kind domain.EntryKind, entryID int64, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	existing, err := s.entryRepo.FindEntryByID(ctx, kind, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry for update",
				slog.String("kind", string(kind)),
				slog.Int64("entry_id", entryID))
		}
		return nil, err
	}

	updated := *existing
	if req.OccurredAt != nil {
		updated.OccurredAt = *req.OccurredAt
	}
	if req.Category != nil {
		updated.Category = *req.Category
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.Value.IsNegative() {
			return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
		}
		updated.Amount = req.Amount.Value
	}
	if req.AccountID.Present {
		updated.AccountID = req.AccountID.ID
	}

	if updated.AccountID != nil {
		if err := s.checkAccountExists(ctx, *updated.AccountID); err != nil {
			s.LogWarn(ctx, "Account reference rejected on entry update",
				slog.Int64("entry_id", entryID),
				slog.Int64("account_id", *updated.AccountID),
				slog.String("error", err.Error()))
			return nil, err
		}
	}

	revert, apply := reconcileDeltas(existing, &updated)
	updated.LastUpdatedAt = time.Now().UTC()
	updated.AccountName = "" // Stale after a rebind; list/get re-joins it

	if err := s.entryRepo.UpdateEntry(ctx, updated, revert, apply); err != nil {
		s.LogError(ctx, err, "Failed to update entry",
			slog.String("kind", string(kind)),
			slog.Int64("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Entry updated successfully",
		slog.String("kind", string(kind)),
		slog.Int64("entry_id", entryID))
	return &updated, nil
}

// DeleteEntry removes an entry, reverting its balance effect.
func (s *ledgerService) DeleteEntry(ctx context.Context, kind domain.EntryKind, entryID int64) error {
	existing, err := s.entryRepo.FindEntryByID(ctx, kind, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry for delete",
				slog.String("kind", string(kind)),
				slog.Int64("entry_id", entryID))
		}
		return err
	}

	revert, _ := reconcileDeltas(existing, nil)

	if err := s.entryRepo.DeleteEntry(ctx, kind, entryID, revert); err != nil {
		s.LogError(ctx, err, "Failed to delete entry",
			slog.String("kind", string(kind)),
			slog.Int64("entry_id", entryID))
		return err
	}

	s.LogInfo(ctx, "Entry deleted successfully",
		slog.String("kind", string(kind)),
		slog.Int64("entry_id", entryID))
	return nil
}
