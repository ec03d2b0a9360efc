package services_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/evfin/event_finance_app/internal/dto"
)

// Shared mocks for the service test suites. Several suites need the same
// repository mock (budget line reads back the transaction and sponsorship
// services, settings backs everything), so they live here instead of
// being re-declared per file.

// --- Mock SettingsRepository ---

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Mock SettingsSvcFacade ---

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updaterUserID string) (*domain.Settings, error) {
	args := m.Called(ctx, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

// --- Mock BudgetLineRepository ---

type MockBudgetLineRepository struct {
	mock.Mock
}

func (m *MockBudgetLineRepository) FindBudgetLineByID(ctx context.Context, budgetLineID string) (*domain.BudgetLine, error) {
	args := m.Called(ctx, budgetLineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetLine), args.Error(1)
}

func (m *MockBudgetLineRepository) ListBudgetLines(ctx context.Context) ([]domain.BudgetLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetLine), args.Error(1)
}

func (m *MockBudgetLineRepository) SaveBudgetLine(ctx context.Context, line domain.BudgetLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockBudgetLineRepository) UpdateBudgetLine(ctx context.Context, line domain.BudgetLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockBudgetLineRepository) DeleteBudgetLine(ctx context.Context, budgetLineID string) error {
	args := m.Called(ctx, budgetLineID)
	return args.Error(0)
}

func (m *MockBudgetLineRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockBudgetLineRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockBudgetLineRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, allocations []domain.Allocation) error {
	args := m.Called(ctx, txn, allocations)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, allocations []domain.Allocation) error {
	args := m.Called(ctx, txn, allocations)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock SponsorshipRepository ---

type MockSponsorshipRepository struct {
	mock.Mock
}

func (m *MockSponsorshipRepository) FindSponsorshipByID(ctx context.Context, sponsorshipID string) (*domain.Sponsorship, error) {
	args := m.Called(ctx, sponsorshipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sponsorship), args.Error(1)
}

func (m *MockSponsorshipRepository) ListSponsorships(ctx context.Context, limit int, nextToken *string) ([]domain.Sponsorship, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var sponsorships []domain.Sponsorship
	if args.Get(0) != nil {
		sponsorships = args.Get(0).([]domain.Sponsorship)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return sponsorships, token, args.Error(2)
}

func (m *MockSponsorshipRepository) ListAllSponsorships(ctx context.Context) ([]domain.Sponsorship, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sponsorship), args.Error(1)
}

func (m *MockSponsorshipRepository) SaveSponsorship(ctx context.Context, s domain.Sponsorship, allocations []domain.Allocation) error {
	args := m.Called(ctx, s, allocations)
	return args.Error(0)
}

func (m *MockSponsorshipRepository) UpdateSponsorship(ctx context.Context, s domain.Sponsorship, allocations []domain.Allocation) error {
	args := m.Called(ctx, s, allocations)
	return args.Error(0)
}

func (m *MockSponsorshipRepository) DeleteSponsorship(ctx context.Context, sponsorshipID string) error {
	args := m.Called(ctx, sponsorshipID)
	return args.Error(0)
}

func (m *MockSponsorshipRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockSponsorshipRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSponsorshipRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// testSettings is the standard event configuration used across the
// suites: EUR reporting, HUF secondary at 400 HUF per EUR.
func testSettings() *domain.Settings {
	return &domain.Settings{
		SettingsID:        domain.SettingsID,
		EventName:         "Test Conference",
		ReportingCurrency: "EUR",
		SecondaryCurrency: "HUF",
		ExchangeRate:      decimal.RequireFromString("400"),
		Accounts:          []string{"Cash box", "Main bank"},
	}
}
