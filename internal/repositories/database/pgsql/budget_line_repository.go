package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/evfin/event_finance_app/internal/apperrors"
	"github.com/evfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/evfin/event_finance_app/internal/core/ports/repositories"
	"github.com/evfin/event_finance_app/internal/models"
	"github.com/evfin/event_finance_app/internal/utils/mapping"
)

type PgxBudgetLineRepository struct {
	BaseRepository
}

// newPgxBudgetLineRepository creates a new repository for budget line data.
func newPgxBudgetLineRepository(pool *pgxpool.Pool) portsrepo.BudgetLineRepositoryWithTx {
	return &PgxBudgetLineRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetLineRepositoryWithTx = (*PgxBudgetLineRepository)(nil)

const budgetLineColumns = `budget_line_id, name, macro_category, unit_cost, currency_code, quantity, notes,
		created_at, created_by, last_updated_at, last_updated_by`

func scanBudgetLine(row pgx.Row) (models.BudgetLine, error) {
	var m models.BudgetLine
	err := row.Scan(
		&m.BudgetLineID,
		&m.Name,
		&m.MacroCategory,
		&m.UnitCost,
		&m.CurrencyCode,
		&m.Quantity,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindBudgetLineByID retrieves a budget line by its ID.
func (r *PgxBudgetLineRepository) FindBudgetLineByID(ctx context.Context, budgetLineID string) (*domain.BudgetLine, error) {
	query := `SELECT ` + budgetLineColumns + ` FROM budget_lines WHERE budget_line_id = $1;`
	m, err := scanBudgetLine(r.Pool.QueryRow(ctx, query, budgetLineID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find budget line by ID "+budgetLineID, err)
	}

	line := mapping.ToDomainBudgetLine(m)
	return &line, nil
}

// ListBudgetLines retrieves every budget line ordered by macro category
// then name, the display order of the budget chart.
func (r *PgxBudgetLineRepository) ListBudgetLines(ctx context.Context) ([]domain.BudgetLine, error) {
	query := `SELECT ` + budgetLineColumns + ` FROM budget_lines ORDER BY macro_category, name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budget lines", err)
	}
	defer rows.Close()

	lines := []domain.BudgetLine{}
	for rows.Next() {
		m, err := scanBudgetLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget line row", err)
		}
		lines = append(lines, mapping.ToDomainBudgetLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating budget line rows", err)
	}
	return lines, nil
}

// SaveBudgetLine inserts a new budget line.
func (r *PgxBudgetLineRepository) SaveBudgetLine(ctx context.Context, line domain.BudgetLine) error {
	m := mapping.ToModelBudgetLine(line)
	query := `
		INSERT INTO budget_lines (` + budgetLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetLineID,
		m.Name,
		m.MacroCategory,
		m.UnitCost,
		m.CurrencyCode,
		m.Quantity,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert budget line "+m.BudgetLineID, err)
	}
	return nil
}

// UpdateBudgetLine replaces all fields of an existing budget line.
func (r *PgxBudgetLineRepository) UpdateBudgetLine(ctx context.Context, line domain.BudgetLine) error {
	m := mapping.ToModelBudgetLine(line)
	query := `
		UPDATE budget_lines SET
			name = $2,
			macro_category = $3,
			unit_cost = $4,
			currency_code = $5,
			quantity = $6,
			notes = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE budget_line_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.BudgetLineID,
		m.Name,
		m.MacroCategory,
		m.UnitCost,
		m.CurrencyCode,
		m.Quantity,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update budget line "+m.BudgetLineID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBudgetLine removes the line and every allocation referencing it,
// in both allocation tables, within one database transaction. The schema
// also carries ON DELETE CASCADE; the explicit deletes keep the behavior
// independent of the constraint definition.
func (r *PgxBudgetLineRepository) DeleteBudgetLine(ctx context.Context, budgetLineID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM transaction_allocations WHERE budget_line_id = $1;`, budgetLineID); err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction allocations for budget line "+budgetLineID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM sponsorship_allocations WHERE budget_line_id = $1;`, budgetLineID); err != nil {
		return apperrors.NewAppError(500, "failed to delete sponsorship allocations for budget line "+budgetLineID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM budget_lines WHERE budget_line_id = $1;`, budgetLineID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete budget line "+budgetLineID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
