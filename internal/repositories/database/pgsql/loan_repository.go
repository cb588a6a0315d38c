package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack-labs/expense_tracker_api/internal/apperrors"
	"github.com/fintrack-labs/expense_tracker_api/internal/core/domain"
	portsrepo "github.com/fintrack-labs/expense_tracker_api/internal/core/ports/repositories"
	"github.com/fintrack-labs/expense_tracker_api/internal/models"
	"github.com/fintrack-labs/expense_tracker_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for loan data.
func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepositoryFacade {
	return &PgxLoanRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxLoanRepository implements portsrepo.LoanRepositoryFacade
var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

// SaveLoan inserts a new loan and returns its generated id.
func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) (int64, error) {
	modelLoan := mapping.ToModelLoan(loan)

	query := `
		INSERT INTO loans (person_name, direction, amount, date, description, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING loan_id;
	`

	var loanID int64
	err := r.Pool.QueryRow(ctx, query,
		modelLoan.PersonName,
		modelLoan.Direction,
		modelLoan.Amount,
		modelLoan.Date,
		modelLoan.Description,
		modelLoan.CreatedAt,
		modelLoan.LastUpdatedAt,
	).Scan(&loanID)
	if err != nil {
		return 0, fmt.Errorf("failed to save loan for %q: %w", modelLoan.PersonName, err)
	}
	return loanID, nil
}

// FindLoanByID retrieves a single loan by its id.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID int64) (*domain.Loan, error) {
	query := `
		SELECT loan_id, person_name, direction, amount, date, description, created_at, last_updated_at
		FROM loans
		WHERE loan_id = $1;
	`

	var modelLoan models.Loan
	err := r.Pool.QueryRow(ctx, query, loanID).Scan(
		&modelLoan.LoanID,
		&modelLoan.PersonName,
		&modelLoan.Direction,
		&modelLoan.Amount,
		&modelLoan.Date,
		&modelLoan.Description,
		&modelLoan.CreatedAt,
		&modelLoan.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan %d: %w", loanID, err)
	}

	loan := mapping.ToDomainLoan(modelLoan)
	return &loan, nil
}

// ListLoans retrieves all loans, newest date first.
func (r *PgxLoanRepository) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	query := `
		SELECT loan_id, person_name, direction, amount, date, description, created_at, last_updated_at
		FROM loans
		ORDER BY date DESC, loan_id DESC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	modelLoans, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Loan, error) {
		var m models.Loan
		err := row.Scan(&m.LoanID, &m.PersonName, &m.Direction, &m.Amount, &m.Date, &m.Description, &m.CreatedAt, &m.LastUpdatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan loan rows: %w", err)
	}

	loans := make([]domain.Loan, len(modelLoans))
	for i, m := range modelLoans {
		loans[i] = mapping.ToDomainLoan(m)
	}
	return loans, nil
}

// UpdateLoan updates an existing loan.
func (r *PgxLoanRepository) UpdateLoan(ctx context.Context, loan domain.Loan) error {
	modelLoan := mapping.ToModelLoan(loan)

	query := `
		UPDATE loans
		SET person_name = $2, direction = $3, amount = $4, date = $5, description = $6, last_updated_at = $7
		WHERE loan_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelLoan.LoanID,
		modelLoan.PersonName,
		modelLoan.Direction,
		modelLoan.Amount,
		modelLoan.Date,
		modelLoan.Description,
		modelLoan.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan %d: %w", modelLoan.LoanID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteLoan removes a loan.
func (r *PgxLoanRepository) DeleteLoan(ctx context.Context, loanID int64) error {
	query := `DELETE FROM loans WHERE loan_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, loanID)
	if err != nil {
		return fmt.Errorf("failed to delete loan %d: %w", loanID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
