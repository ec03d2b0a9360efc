package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/evfin/event_finance_app/internal/apperrors"
	"github.com/evfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/evfin/event_finance_app/internal/core/ports/repositories"
	"github.com/evfin/event_finance_app/internal/models"
	"github.com/evfin/event_finance_app/internal/utils/mapping"
	"github.com/evfin/event_finance_app/internal/utils/pagination"
)

type PgxSponsorshipRepository struct {
	BaseRepository
}

// newPgxSponsorshipRepository creates a new repository for sponsorship data.
func newPgxSponsorshipRepository(pool *pgxpool.Pool) portsrepo.SponsorshipRepositoryWithTx {
	return &PgxSponsorshipRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SponsorshipRepositoryWithTx = (*PgxSponsorshipRepository)(nil)

const sponsorshipColumns = `sponsorship_id, sponsor_name, description, pledged_amount, paid_amount,
		currency_code, status, expected_date, received_date, payment_method, account, notes,
		created_at, created_by, last_updated_at, last_updated_by`

func scanSponsorship(row pgx.Row) (models.Sponsorship, error) {
	var m models.Sponsorship
	err := row.Scan(
		&m.SponsorshipID,
		&m.SponsorName,
		&m.Description,
		&m.PledgedAmount,
		&m.PaidAmount,
		&m.CurrencyCode,
		&m.Status,
		&m.ExpectedDate,
		&m.ReceivedDate,
		&m.PaymentMethod,
		&m.Account,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// loadAllocations fetches the allocation rows for a set of sponsorships
// in one query, grouped by owning sponsorship.
func (r *PgxSponsorshipRepository) loadAllocations(ctx context.Context, sponsorshipIDs []string) (map[string][]domain.Allocation, error) {
	byParent := make(map[string][]domain.Allocation, len(sponsorshipIDs))
	if len(sponsorshipIDs) == 0 {
		return byParent, nil
	}

	query := `
		SELECT allocation_id, sponsorship_id, budget_line_id, amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM sponsorship_allocations
		WHERE sponsorship_id = ANY($1)
		ORDER BY created_at, allocation_id;
	`
	rows, err := r.Pool.Query(ctx, query, sponsorshipIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sponsorship allocations", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.SponsorshipAllocation
		err := rows.Scan(
			&m.AllocationID,
			&m.SponsorshipID,
			&m.BudgetLineID,
			&m.Amount,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sponsorship allocation row", err)
		}
		byParent[m.SponsorshipID] = append(byParent[m.SponsorshipID], mapping.ToDomainSponsorshipAllocation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sponsorship allocation rows", err)
	}
	return byParent, nil
}

// FindSponsorshipByID retrieves a sponsorship and its allocations.
func (r *PgxSponsorshipRepository) FindSponsorshipByID(ctx context.Context, sponsorshipID string) (*domain.Sponsorship, error) {
	query := `SELECT ` + sponsorshipColumns + ` FROM sponsorships WHERE sponsorship_id = $1;`
	m, err := scanSponsorship(r.Pool.QueryRow(ctx, query, sponsorshipID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sponsorship by ID "+sponsorshipID, err)
	}

	allocations, err := r.loadAllocations(ctx, []string{sponsorshipID})
	if err != nil {
		return nil, err
	}

	sponsorship := mapping.ToDomainSponsorship(m)
	sponsorship.Allocations = allocations[sponsorshipID]
	return &sponsorship, nil
}

// ListSponsorships retrieves a page of sponsorships ordered by creation
// time descending using token-based pagination. Sponsorships have no
// business date of their own, so the token's record date is the creation
// time as well.
func (r *PgxSponsorshipRepository) ListSponsorships(ctx context.Context, limit int, nextToken *string) ([]domain.Sponsorship, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + sponsorshipColumns + ` FROM sponsorships`
	orderByClause := `ORDER BY created_at DESC, sponsorship_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		_, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `WHERE created_at < $1`
		args = append(args, lastCreatedAt)
		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query sponsorships", err)
	}
	defer rows.Close()

	modelSponsorships := []models.Sponsorship{}
	for rows.Next() {
		m, err := scanSponsorship(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan sponsorship row", err)
		}
		modelSponsorships = append(modelSponsorships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating sponsorship rows", err)
	}

	var newNextToken *string
	if len(modelSponsorships) > limit {
		modelSponsorships = modelSponsorships[:limit]
		last := modelSponsorships[len(modelSponsorships)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.CreatedAt)
		newNextToken = &token
	}

	ids := make([]string, len(modelSponsorships))
	for i, m := range modelSponsorships {
		ids[i] = m.SponsorshipID
	}
	allocations, err := r.loadAllocations(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	sponsorships := make([]domain.Sponsorship, len(modelSponsorships))
	for i, m := range modelSponsorships {
		sponsorships[i] = mapping.ToDomainSponsorship(m)
		sponsorships[i].Allocations = allocations[m.SponsorshipID]
	}
	return sponsorships, newNextToken, nil
}

// ListAllSponsorships retrieves every sponsorship with allocations, for
// reporting and export. Cancelled rows are included.
func (r *PgxSponsorshipRepository) ListAllSponsorships(ctx context.Context) ([]domain.Sponsorship, error) {
	query := `SELECT ` + sponsorshipColumns + ` FROM sponsorships ORDER BY created_at DESC, sponsorship_id DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sponsorships", err)
	}
	defer rows.Close()

	modelSponsorships := []models.Sponsorship{}
	for rows.Next() {
		m, err := scanSponsorship(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sponsorship row", err)
		}
		modelSponsorships = append(modelSponsorships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sponsorship rows", err)
	}

	ids := make([]string, len(modelSponsorships))
	for i, m := range modelSponsorships {
		ids[i] = m.SponsorshipID
	}
	allocations, err := r.loadAllocations(ctx, ids)
	if err != nil {
		return nil, err
	}

	sponsorships := make([]domain.Sponsorship, len(modelSponsorships))
	for i, m := range modelSponsorships {
		sponsorships[i] = mapping.ToDomainSponsorship(m)
		sponsorships[i].Allocations = allocations[m.SponsorshipID]
	}
	return sponsorships, nil
}

const insertSponsorshipQuery = `
	INSERT INTO sponsorships (` + sponsorshipColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
`

const insertSponsorshipAllocationQuery = `
	INSERT INTO sponsorship_allocations (allocation_id, sponsorship_id, budget_line_id, amount,
		created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

func queueSponsorshipAllocations(batch *pgx.Batch, allocations []domain.Allocation) {
	for _, a := range allocations {
		m := mapping.ToModelSponsorshipAllocation(a)
		batch.Queue(insertSponsorshipAllocationQuery,
			m.AllocationID,
			m.SponsorshipID,
			m.BudgetLineID,
			m.Amount,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
}

// SaveSponsorship inserts the sponsorship row and its allocations within
// a DB transaction.
func (r *PgxSponsorshipRepository) SaveSponsorship(ctx context.Context, s domain.Sponsorship, allocations []domain.Allocation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelSponsorship(s)
	_, err = tx.Exec(ctx, insertSponsorshipQuery,
		m.SponsorshipID,
		m.SponsorName,
		m.Description,
		m.PledgedAmount,
		m.PaidAmount,
		m.CurrencyCode,
		m.Status,
		m.ExpectedDate,
		m.ReceivedDate,
		m.PaymentMethod,
		m.Account,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert sponsorship "+m.SponsorshipID, err)
	}

	batch := &pgx.Batch{}
	queueSponsorshipAllocations(batch, allocations)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute allocation batch for sponsorship "+m.SponsorshipID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateSponsorship replaces the row's fields and its full allocation set
// (delete-then-insert) within a DB transaction. The row update comes
// first so its lock serializes concurrent replacements.
func (r *PgxSponsorshipRepository) UpdateSponsorship(ctx context.Context, s domain.Sponsorship, allocations []domain.Allocation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelSponsorship(s)
	updateQuery := `
		UPDATE sponsorships SET
			sponsor_name = $2,
			description = $3,
			pledged_amount = $4,
			paid_amount = $5,
			currency_code = $6,
			status = $7,
			expected_date = $8,
			received_date = $9,
			payment_method = $10,
			account = $11,
			notes = $12,
			last_updated_at = $13,
			last_updated_by = $14
		WHERE sponsorship_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		m.SponsorshipID,
		m.SponsorName,
		m.Description,
		m.PledgedAmount,
		m.PaidAmount,
		m.CurrencyCode,
		m.Status,
		m.ExpectedDate,
		m.ReceivedDate,
		m.PaymentMethod,
		m.Account,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update sponsorship "+m.SponsorshipID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sponsorship_allocations WHERE sponsorship_id = $1;`, m.SponsorshipID); err != nil {
		return apperrors.NewAppError(500, "failed to delete allocations for sponsorship "+m.SponsorshipID, err)
	}

	batch := &pgx.Batch{}
	queueSponsorshipAllocations(batch, allocations)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute allocation batch for sponsorship "+m.SponsorshipID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteSponsorship removes the sponsorship and its allocations within a
// DB transaction.
func (r *PgxSponsorshipRepository) DeleteSponsorship(ctx context.Context, sponsorshipID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM sponsorship_allocations WHERE sponsorship_id = $1;`, sponsorshipID); err != nil {
		return apperrors.NewAppError(500, "failed to delete allocations for sponsorship "+sponsorshipID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM sponsorships WHERE sponsorship_id = $1;`, sponsorshipID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete sponsorship "+sponsorshipID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
