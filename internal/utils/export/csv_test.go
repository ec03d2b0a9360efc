package export_test

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/evfin/event_finance_app/internal/utils/export"
)

func TestWriteRollups_SectionShape(t *testing.T) {
	settings := domain.Settings{
		ReportingCurrency: "EUR",
		SecondaryCurrency: "HUF",
		ExchangeRate:      decimal.RequireFromString("400"),
	}
	lineRollups := []domain.BudgetLineRollup{
		{
			Name:             "Venue rental",
			MacroCategory:    "Venue",
			CurrencyCode:     "EUR",
			Planned:          decimal.RequireFromString("3000"),
			PlannedReporting: decimal.RequireFromString("3000"),
			SpentReporting:   decimal.RequireFromString("10.005"),
			BalanceReporting: decimal.RequireFromString("-10.005"),
		},
	}
	accountRollups := []domain.AccountRollup{
		{Account: "Main bank", IncomeReporting: decimal.RequireFromString("100"), BalanceReporting: decimal.RequireFromString("100")},
		{Account: domain.NoAccountLabel},
	}
	txns := []domain.Transaction{
		{
			Date:          time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
			Type:          domain.Expense,
			Description:   "Venue deposit",
			Amount:        decimal.RequireFromString("150"),
			CurrencyCode:  "EUR",
			PaymentMethod: domain.PaymentBankTransfer,
			Account:       "Main bank",
			Allocations:   []domain.Allocation{{}, {}},
		},
	}
	sponsorships := []domain.Sponsorship{
		{
			SponsorName:   "Acme Corp",
			Status:        domain.SponsorshipPledged,
			PledgedAmount: decimal.RequireFromString("2000"),
			PaidAmount:    decimal.Zero,
			CurrencyCode:  "EUR",
			PaymentMethod: domain.PaymentBankTransfer,
		},
	}

	var buf strings.Builder
	err := export.WriteRollups(&buf, settings, lineRollups, accountRollups, txns, sponsorships)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Budget lines")
	assert.Contains(t, out, "Accounts")
	assert.Contains(t, out, "Transactions")
	assert.Contains(t, out, "Sponsorships")

	// Reporting-currency headers carry the configured code.
	assert.Contains(t, out, "Balance (EUR)")

	// Amounts are rounded to two decimals at this boundary.
	assert.Contains(t, out, "10.01")
	assert.NotContains(t, out, "10.005")

	// The document stays parseable as CSV with variable-width records.
	r := csv.NewReader(strings.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	var titles []string
	for _, rec := range records {
		if len(rec) == 1 && rec[0] != "" {
			titles = append(titles, rec[0])
		}
	}
	assert.Equal(t, []string{"Budget lines", "Accounts", "Transactions", "Sponsorships"}, titles)
}

func TestWriteRollups_EmptyDataset(t *testing.T) {
	var buf strings.Builder
	err := export.WriteRollups(&buf, domain.Settings{ReportingCurrency: "EUR"}, nil, nil, nil, nil)
	require.NoError(t, err)

	// Headers are written even with no rows, so operators always get a
	// template-shaped file.
	assert.Contains(t, buf.String(), "Macro category")
	assert.Contains(t, buf.String(), "Sponsor")
}
