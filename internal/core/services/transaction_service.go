package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/evfin/event_finance_app/internal/apperrors"
	"github.com/evfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/evfin/event_finance_app/internal/core/ports/repositories"
	portssvc "github.com/evfin/event_finance_app/internal/core/ports/services"
	"github.com/evfin/event_finance_app/internal/dto"
	"github.com/evfin/event_finance_app/internal/middleware"
)

var (
	ErrTransactionDescriptionMissing = errors.New("transaction description is required")
	ErrTransactionDateMissing        = errors.New("transaction date is required")
)

// transactionService records actual cash movements and their budget line
// splits. Every mutation replaces the full allocation set together with
// the transaction row; a validation failure rejects the whole write.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryWithTx
	budgetLineRepo  portsrepo.BudgetLineReader
	settingsSvc     portssvc.SettingsSvcFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryWithTx, budgetLineRepo portsrepo.BudgetLineReader, settingsSvc portssvc.SettingsSvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		budgetLineRepo:  budgetLineRepo,
		settingsSvc:     settingsSvc,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateRequest checks everything except the allocation set.
func (s *transactionService) validateRequest(ctx context.Context, req dto.CreateTransactionRequest) error {
	if !domain.TransactionType(req.Type).IsValid() {
		return fmt.Errorf("%w: transaction type must be INCOME or EXPENSE", apperrors.ErrValidation)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrTransactionDateMissing)
	}
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrTransactionDescriptionMissing)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !domain.PaymentMethod(req.PaymentMethod).IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}

	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings for transaction validation: %w", err)
	}
	if !settings.IsKnownCurrency(req.CurrencyCode) {
		return fmt.Errorf("%w: currency %q is not one of the configured currencies (%s, %s)",
			apperrors.ErrValidation, req.CurrencyCode, settings.ReportingCurrency, settings.SecondaryCurrency)
	}
	if !settings.IsKnownAccount(req.Account) {
		return fmt.Errorf("%w: account %q is not in the configured account list", apperrors.ErrValidation, req.Account)
	}
	return nil
}

// buildTransaction assembles the domain record from a request.
func buildTransaction(id string, req dto.CreateTransactionRequest, audit domain.AuditFields) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Type:          domain.TransactionType(req.Type),
		Date:          req.Date,
		Description:   strings.TrimSpace(req.Description),
		Counterparty:  strings.TrimSpace(req.Counterparty),
		Amount:        req.Amount,
		CurrencyCode:  req.CurrencyCode,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Account:       strings.TrimSpace(req.Account),
		Notes:         req.Notes,
		AuditFields:   audit,
	}
}

// CreateTransaction validates and persists a new transaction with its
// allocation set in a single atomic write.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateRequest(ctx, req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	transactionID := uuid.NewString()
	txn := buildTransaction(transactionID, req, domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	})

	allocations, err := prepareAllocations(ctx, req.Allocations, txn, transactionID, s.budgetLineRepo, creatorUserID, now)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn, allocations); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	txn.Allocations = allocations
	logger.Info("Transaction created",
		slog.String("transaction_id", transactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()),
		slog.Int("allocations", len(allocations)))
	return &txn, nil
}

// UpdateTransaction replaces the transaction's fields and its full
// allocation set. The existing record must exist and remains untouched if
// validation fails.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, updaterUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if err := s.validateRequest(ctx, req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := buildTransaction(transactionID, req, domain.AuditFields{
		CreatedAt:     existing.CreatedAt,
		CreatedBy:     existing.CreatedBy,
		LastUpdatedAt: now,
		LastUpdatedBy: updaterUserID,
	})

	allocations, err := prepareAllocations(ctx, req.Allocations, txn, transactionID, s.budgetLineRepo, updaterUserID, now)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, txn, allocations); err != nil {
		logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}

	txn.Allocations = allocations
	logger.Info("Transaction updated", slog.String("transaction_id", transactionID), slog.Int("allocations", len(allocations)))
	return &txn, nil
}

// DeleteTransaction removes the transaction and its allocations.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// GetTransactionByID retrieves a transaction and its allocations.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

// ListTransactions retrieves a page of transactions.
func (s *transactionService) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.transactionRepo.ListTransactions(ctx, limit, nextToken)
}
