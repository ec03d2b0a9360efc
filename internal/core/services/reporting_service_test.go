package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/evfin/event_finance_app/internal/apperrors"
	"github.com/evfin/event_finance_app/internal/core/domain"
	portssvc "github.com/evfin/event_finance_app/internal/core/ports/services"
	"github.com/evfin/event_finance_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockBudgetLineRepo  *MockBudgetLineRepository
	mockTransactionRepo *MockTransactionRepository
	mockSponsorshipRepo *MockSponsorshipRepository
	mockSettingsRepo    *MockSettingsRepository
	service             portssvc.ReportingSvcFacade

	lineVenueEUR    string
	lineCateringHUF string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockBudgetLineRepo = new(MockBudgetLineRepository)
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockSponsorshipRepo = new(MockSponsorshipRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.service = services.NewReportingService(
		suite.mockBudgetLineRepo,
		suite.mockTransactionRepo,
		suite.mockSponsorshipRepo,
		suite.mockSettingsRepo,
	)

	suite.lineVenueEUR = uuid.NewString()
	suite.lineCateringHUF = uuid.NewString()
}

// expectDataset wires the four reads the rollups start from.
func (suite *ReportingServiceTestSuite) expectDataset(lines []domain.BudgetLine, txns []domain.Transaction, sponsorships []domain.Sponsorship) {
	suite.mockSettingsRepo.On("GetSettings", context.Background()).Return(testSettings(), nil)
	suite.mockBudgetLineRepo.On("ListBudgetLines", context.Background()).Return(lines, nil)
	suite.mockTransactionRepo.On("ListAllTransactions", context.Background()).Return(txns, nil)
	suite.mockSponsorshipRepo.On("ListAllSponsorships", context.Background()).Return(sponsorships, nil)
}

func (suite *ReportingServiceTestSuite) testLines() []domain.BudgetLine {
	return []domain.BudgetLine{
		{
			BudgetLineID:  suite.lineVenueEUR,
			Name:          "Venue rental",
			MacroCategory: "Venue",
			UnitCost:      decimal.RequireFromString("1500"),
			CurrencyCode:  "EUR",
			Quantity:      decimal.RequireFromString("2"),
		},
		{
			BudgetLineID:  suite.lineCateringHUF,
			Name:          "Coffee breaks",
			MacroCategory: "Catering",
			UnitCost:      decimal.RequireFromString("80000"),
			CurrencyCode:  "HUF",
			Quantity:      decimal.RequireFromString("3"),
		},
	}
}

func (suite *ReportingServiceTestSuite) TestBudgetLineRollups_CrossCurrencySpend() {
	// A 4000 HUF expense allocated to a EUR line contributes 10 EUR of
	// spend at the 400 HUF/EUR rate.
	txns := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			Type:          domain.Expense,
			Amount:        decimal.RequireFromString("4000"),
			CurrencyCode:  "HUF",
			Allocations: []domain.Allocation{
				{AllocationID: uuid.NewString(), BudgetLineID: suite.lineVenueEUR, Amount: decimal.RequireFromString("4000")},
			},
		},
	}
	suite.expectDataset(suite.testLines(), txns, nil)

	rollups, err := suite.service.BudgetLineRollups(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(rollups, 2)

	venue := rollups[0]
	suite.Equal(suite.lineVenueEUR, venue.BudgetLineID)
	suite.True(venue.Planned.Equal(decimal.RequireFromString("3000")))
	suite.True(venue.PlannedReporting.Equal(decimal.RequireFromString("3000")))
	suite.True(venue.SpentReporting.Equal(decimal.RequireFromString("10")))
	suite.True(venue.Spent.Equal(decimal.RequireFromString("10")), "EUR line native spend equals the reporting figure")
	suite.True(venue.BalanceReporting.Equal(decimal.RequireFromString("-10")))

	catering := rollups[1]
	suite.True(catering.Planned.Equal(decimal.RequireFromString("240000")))
	suite.True(catering.PlannedReporting.Equal(decimal.RequireFromString("600")))
	suite.True(catering.SpentReporting.IsZero())
}

func (suite *ReportingServiceTestSuite) TestBudgetLineRollups_IncomeNativeDerivation() {
	// 100 EUR of income on a HUF line shows as 40000 HUF natively.
	txns := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			Type:          domain.Income,
			Amount:        decimal.RequireFromString("100"),
			CurrencyCode:  "EUR",
			Allocations: []domain.Allocation{
				{AllocationID: uuid.NewString(), BudgetLineID: suite.lineCateringHUF, Amount: decimal.RequireFromString("100")},
			},
		},
	}
	suite.expectDataset(suite.testLines(), txns, nil)

	rollups, err := suite.service.BudgetLineRollups(context.Background())

	suite.Require().NoError(err)
	catering := rollups[1]
	suite.True(catering.IncomeReporting.Equal(decimal.RequireFromString("100")))
	suite.True(catering.Income.Equal(decimal.RequireFromString("40000")))
}

func (suite *ReportingServiceTestSuite) TestBudgetLineRollups_CancelledSponsorshipExcluded() {
	sponsorships := []domain.Sponsorship{
		{
			SponsorshipID: uuid.NewString(),
			SponsorName:   "Acme Corp",
			PledgedAmount: decimal.RequireFromString("2000"),
			CurrencyCode:  "EUR",
			Status:        domain.SponsorshipPledged,
			Allocations: []domain.Allocation{
				{AllocationID: uuid.NewString(), BudgetLineID: suite.lineVenueEUR, Amount: decimal.RequireFromString("2000")},
			},
		},
		{
			SponsorshipID: uuid.NewString(),
			SponsorName:   "Gone Ltd",
			PledgedAmount: decimal.RequireFromString("999"),
			CurrencyCode:  "EUR",
			Status:        domain.SponsorshipCancelled,
			Allocations: []domain.Allocation{
				{AllocationID: uuid.NewString(), BudgetLineID: suite.lineVenueEUR, Amount: decimal.RequireFromString("999")},
			},
		},
	}
	suite.expectDataset(suite.testLines(), nil, sponsorships)

	rollups, err := suite.service.BudgetLineRollups(context.Background())

	suite.Require().NoError(err)
	venue := rollups[0]
	suite.True(venue.SponsoredReporting.Equal(decimal.RequireFromString("2000")),
		"cancelled sponsorship must not contribute")
	suite.True(venue.BalanceReporting.Equal(decimal.RequireFromString("2000")))
}

func (suite *ReportingServiceTestSuite) TestBudgetLineRollups_OrphanAllocationSkipped() {
	txns := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			Type:          domain.Expense,
			Amount:        decimal.RequireFromString("50"),
			CurrencyCode:  "EUR",
			Allocations: []domain.Allocation{
				{AllocationID: uuid.NewString(), BudgetLineID: uuid.NewString(), Amount: decimal.RequireFromString("50")},
			},
		},
	}
	suite.expectDataset(suite.testLines(), txns, nil)

	rollups, err := suite.service.BudgetLineRollups(context.Background())

	suite.Require().NoError(err)
	for _, r := range rollups {
		suite.True(r.SpentReporting.IsZero())
	}
}

func (suite *ReportingServiceTestSuite) TestMacroCategoryRollups_GroupsAndSorts() {
	txns := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			Type:          domain.Expense,
			Amount:        decimal.RequireFromString("100"),
			CurrencyCode:  "EUR",
			Allocations: []domain.Allocation{
				{AllocationID: uuid.NewString(), BudgetLineID: suite.lineVenueEUR, Amount: decimal.RequireFromString("100")},
			},
		},
	}
	suite.expectDataset(suite.testLines(), txns, nil)

	rollups, err := suite.service.MacroCategoryRollups(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(rollups, 2)
	suite.Equal("Catering", rollups[0].MacroCategory)
	suite.Equal("Venue", rollups[1].MacroCategory)
	suite.True(rollups[1].SpentReporting.Equal(decimal.RequireFromString("100")))
	suite.True(rollups[1].BalanceReporting.Equal(decimal.RequireFromString("-100")))
	suite.True(rollups[0].PlannedReporting.Equal(decimal.RequireFromString("600")))
}

func (suite *ReportingServiceTestSuite) TestAccountRollups_NoAccountBucketSortsLast() {
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), Type: domain.Income, Amount: decimal.RequireFromString("100"), CurrencyCode: "EUR", Account: "Main bank"},
		{TransactionID: uuid.NewString(), Type: domain.Expense, Amount: decimal.RequireFromString("4000"), CurrencyCode: "HUF", Account: "Main bank"},
		{TransactionID: uuid.NewString(), Type: domain.Expense, Amount: decimal.RequireFromString("20"), CurrencyCode: "EUR", Account: ""},
		{TransactionID: uuid.NewString(), Type: domain.Income, Amount: decimal.RequireFromString("5"), CurrencyCode: "EUR", Account: "Cash box"},
	}
	suite.expectDataset(suite.testLines(), txns, nil)

	rollups, err := suite.service.AccountRollups(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(rollups, 3)
	suite.Equal("Cash box", rollups[0].Account)
	suite.Equal("Main bank", rollups[1].Account)
	suite.Equal(domain.NoAccountLabel, rollups[2].Account)

	mainBank := rollups[1]
	suite.True(mainBank.IncomeReporting.Equal(decimal.RequireFromString("100")))
	suite.True(mainBank.ExpenseReporting.Equal(decimal.RequireFromString("10")))
	suite.True(mainBank.BalanceReporting.Equal(decimal.RequireFromString("90")))

	suite.True(rollups[2].ExpenseReporting.Equal(decimal.RequireFromString("20")))
}

func (suite *ReportingServiceTestSuite) TestOverview_SumsLineFigures() {
	txns := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			Type:          domain.Expense,
			Amount:        decimal.RequireFromString("4000"),
			CurrencyCode:  "HUF",
			Allocations: []domain.Allocation{
				{AllocationID: uuid.NewString(), BudgetLineID: suite.lineVenueEUR, Amount: decimal.RequireFromString("4000")},
			},
		},
	}
	sponsorships := []domain.Sponsorship{
		{
			SponsorshipID: uuid.NewString(),
			PledgedAmount: decimal.RequireFromString("500"),
			CurrencyCode:  "EUR",
			Status:        domain.SponsorshipPaid,
			Allocations: []domain.Allocation{
				{AllocationID: uuid.NewString(), BudgetLineID: suite.lineCateringHUF, Amount: decimal.RequireFromString("500")},
			},
		},
	}
	suite.expectDataset(suite.testLines(), txns, sponsorships)

	totals, err := suite.service.Overview(context.Background())

	suite.Require().NoError(err)
	// Planned: 3000 EUR + 240000/400 HUF = 3600.
	suite.True(totals.PlannedReporting.Equal(decimal.RequireFromString("3600")))
	suite.True(totals.SpentReporting.Equal(decimal.RequireFromString("10")))
	suite.True(totals.SponsoredReporting.Equal(decimal.RequireFromString("500")))
	suite.True(totals.BalanceReporting.Equal(decimal.RequireFromString("490")))
}

func (suite *ReportingServiceTestSuite) TestDataset_ReturnsEverything() {
	lines := suite.testLines()
	txns := []domain.Transaction{{TransactionID: uuid.NewString(), Type: domain.Income, Amount: decimal.RequireFromString("1"), CurrencyCode: "EUR"}}
	sponsorships := []domain.Sponsorship{{SponsorshipID: uuid.NewString(), Status: domain.SponsorshipCancelled, PledgedAmount: decimal.RequireFromString("1")}}
	suite.expectDataset(lines, txns, sponsorships)

	ds, err := suite.service.Dataset(context.Background())

	suite.Require().NoError(err)
	suite.Equal("EUR", ds.Settings.ReportingCurrency)
	suite.Len(ds.BudgetLines, 2)
	suite.Len(ds.Transactions, 1)
	// Cancelled sponsorships stay in the dataset; exclusion is a rollup
	// rule only.
	suite.Len(ds.Sponsorships, 1)
}

func (suite *ReportingServiceTestSuite) TestBudgetLineRollups_SettingsMissing() {
	suite.mockSettingsRepo.On("GetSettings", context.Background()).Return(nil, apperrors.ErrNotFound).Once()

	rollups, err := suite.service.BudgetLineRollups(context.Background())

	suite.Require().Error(err)
	suite.Nil(rollups)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
