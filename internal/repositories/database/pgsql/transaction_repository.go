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

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, transaction_type, transaction_date, description, counterparty,
		amount, currency_code, payment_method, account, notes,
		created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Type,
		&m.Date,
		&m.Description,
		&m.Counterparty,
		&m.Amount,
		&m.CurrencyCode,
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

// loadAllocations fetches the allocation rows for a set of transactions
// in one query, grouped by owning transaction.
func (r *PgxTransactionRepository) loadAllocations(ctx context.Context, transactionIDs []string) (map[string][]domain.Allocation, error) {
	byParent := make(map[string][]domain.Allocation, len(transactionIDs))
	if len(transactionIDs) == 0 {
		return byParent, nil
	}

	query := `
		SELECT allocation_id, transaction_id, budget_line_id, amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM transaction_allocations
		WHERE transaction_id = ANY($1)
		ORDER BY created_at, allocation_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction allocations", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.TransactionAllocation
		err := rows.Scan(
			&m.AllocationID,
			&m.TransactionID,
			&m.BudgetLineID,
			&m.Amount,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction allocation row", err)
		}
		byParent[m.TransactionID] = append(byParent[m.TransactionID], mapping.ToDomainTransactionAllocation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction allocation rows", err)
	}
	return byParent, nil
}

// FindTransactionByID retrieves a transaction and its allocations.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}

	allocations, err := r.loadAllocations(ctx, []string{transactionID})
	if err != nil {
		return nil, err
	}

	txn := mapping.ToDomainTransaction(m)
	txn.Allocations = allocations[transactionID]
	return &txn, nil
}

// ListTransactions retrieves a page of transactions ordered by date
// descending with creation time as the tie-breaker, using token-based
// pagination. It returns the transactions, a token for the next page, and
// an error.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + transactionColumns + ` FROM transactions`
	orderByClause := `ORDER BY transaction_date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `WHERE (transaction_date, created_at) < ($1, $2)`
		args = append(args, lastDate, lastCreatedAt)
		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var newNextToken *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		newNextToken = &token
	}

	ids := make([]string, len(modelTxns))
	for i, m := range modelTxns {
		ids[i] = m.TransactionID
	}
	allocations, err := r.loadAllocations(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	txns := make([]domain.Transaction, len(modelTxns))
	for i, m := range modelTxns {
		txns[i] = mapping.ToDomainTransaction(m)
		txns[i].Allocations = allocations[m.TransactionID]
	}
	return txns, newNextToken, nil
}

// ListAllTransactions retrieves every transaction with allocations, for
// reporting and export.
func (r *PgxTransactionRepository) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY transaction_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	ids := make([]string, len(modelTxns))
	for i, m := range modelTxns {
		ids[i] = m.TransactionID
	}
	allocations, err := r.loadAllocations(ctx, ids)
	if err != nil {
		return nil, err
	}

	txns := make([]domain.Transaction, len(modelTxns))
	for i, m := range modelTxns {
		txns[i] = mapping.ToDomainTransaction(m)
		txns[i].Allocations = allocations[m.TransactionID]
	}
	return txns, nil
}

const insertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`

const insertTransactionAllocationQuery = `
	INSERT INTO transaction_allocations (allocation_id, transaction_id, budget_line_id, amount,
		created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

func queueTransactionAllocations(batch *pgx.Batch, allocations []domain.Allocation) {
	for _, a := range allocations {
		m := mapping.ToModelTransactionAllocation(a)
		batch.Queue(insertTransactionAllocationQuery,
			m.AllocationID,
			m.TransactionID,
			m.BudgetLineID,
			m.Amount,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
}

// SaveTransaction inserts the transaction row and its allocations within
// a DB transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, allocations []domain.Allocation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransaction(txn)
	_, err = tx.Exec(ctx, insertTransactionQuery,
		m.TransactionID,
		m.Type,
		m.Date,
		m.Description,
		m.Counterparty,
		m.Amount,
		m.CurrencyCode,
		m.PaymentMethod,
		m.Account,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}

	batch := &pgx.Batch{}
	queueTransactionAllocations(batch, allocations)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute allocation batch for transaction "+m.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction replaces the row's fields and its full allocation set
// (delete-then-insert) within a DB transaction. The row update comes
// first so its lock serializes concurrent replacements of the same
// transaction's allocations.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, allocations []domain.Allocation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransaction(txn)
	updateQuery := `
		UPDATE transactions SET
			transaction_type = $2,
			transaction_date = $3,
			description = $4,
			counterparty = $5,
			amount = $6,
			currency_code = $7,
			payment_method = $8,
			account = $9,
			notes = $10,
			last_updated_at = $11,
			last_updated_by = $12
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		m.TransactionID,
		m.Type,
		m.Date,
		m.Description,
		m.Counterparty,
		m.Amount,
		m.CurrencyCode,
		m.PaymentMethod,
		m.Account,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction "+m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transaction_allocations WHERE transaction_id = $1;`, m.TransactionID); err != nil {
		return apperrors.NewAppError(500, "failed to delete allocations for transaction "+m.TransactionID, err)
	}

	batch := &pgx.Batch{}
	queueTransactionAllocations(batch, allocations)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute allocation batch for transaction "+m.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes the transaction and its allocations within a
// DB transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM transaction_allocations WHERE transaction_id = $1;`, transactionID); err != nil {
		return apperrors.NewAppError(500, "failed to delete allocations for transaction "+transactionID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
