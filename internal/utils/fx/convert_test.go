package fx_test

import (
	"testing"

	"github.com/evfin/event_finance_app/internal/apperrors"
	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/evfin/event_finance_app/internal/utils/fx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings(rate string) domain.Settings {
	return domain.Settings{
		ReportingCurrency: "EUR",
		SecondaryCurrency: "HUF",
		ExchangeRate:      decimal.RequireFromString(rate),
	}
}

func TestToReporting_ReportingCurrencyUnchanged(t *testing.T) {
	got, err := fx.ToReporting(decimal.RequireFromString("1234.56"), "EUR", testSettings("400"))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("1234.56")))
}

func TestToReporting_RateOfOneIsIdentity(t *testing.T) {
	got, err := fx.ToReporting(decimal.RequireFromString("77.31"), "HUF", testSettings("1"))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("77.31")))
}

func TestToReporting_SecondaryDividesByRate(t *testing.T) {
	// 4000 HUF at 400 HUF/EUR is 10 EUR.
	got, err := fx.ToReporting(decimal.RequireFromString("4000"), "HUF", testSettings("400"))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("10")), "got %s", got)
}

func TestToReporting_LinearInAmount(t *testing.T) {
	settings := testSettings("387.5")
	a, err := fx.ToReporting(decimal.RequireFromString("1550"), "HUF", settings)
	require.NoError(t, err)
	b, err := fx.ToReporting(decimal.RequireFromString("3100"), "HUF", settings)
	require.NoError(t, err)
	assert.True(t, a.Mul(decimal.NewFromInt(2)).Equal(b))
}

func TestToReporting_UnknownCurrencyRejected(t *testing.T) {
	_, err := fx.ToReporting(decimal.NewFromInt(1), "USD", testSettings("400"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToReporting_NonPositiveRateRejected(t *testing.T) {
	_, err := fx.ToReporting(decimal.NewFromInt(1), "HUF", testSettings("0"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
