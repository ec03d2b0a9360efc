// Package fx converts native-currency amounts into the configured
// reporting currency. The conversion uses the single current rate from
// settings; nothing derived is ever persisted, so a rate change is
// reflected by every subsequent report.
package fx

import (
	"fmt"

	"github.com/evfin/event_finance_app/internal/apperrors"
	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ToReporting converts amount from currencyCode to the reporting currency.
// The stored rate is "secondary units per one reporting unit" (e.g. 400
// HUF per EUR), so secondary amounts divide by the rate. No rounding is
// applied here; callers round at the display boundary only.
func ToReporting(amount decimal.Decimal, currencyCode string, settings domain.Settings) (decimal.Decimal, error) {
	if currencyCode == settings.ReportingCurrency {
		return amount, nil
	}
	if currencyCode == settings.SecondaryCurrency {
		if settings.ExchangeRate.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, fmt.Errorf("%w: exchange rate must be positive, got %s",
				apperrors.ErrValidation, settings.ExchangeRate.String())
		}
		return amount.Div(settings.ExchangeRate), nil
	}
	return decimal.Zero, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, currencyCode)
}

// FromReporting converts an amount in the reporting currency into
// currencyCode, the inverse of ToReporting. Reports use it to express
// cross-currency sums in a budget line's own currency.
func FromReporting(amount decimal.Decimal, currencyCode string, settings domain.Settings) (decimal.Decimal, error) {
	if currencyCode == settings.ReportingCurrency {
		return amount, nil
	}
	if currencyCode == settings.SecondaryCurrency {
		if settings.ExchangeRate.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, fmt.Errorf("%w: exchange rate must be positive, got %s",
				apperrors.ErrValidation, settings.ExchangeRate.String())
		}
		return amount.Mul(settings.ExchangeRate), nil
	}
	return decimal.Zero, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, currencyCode)
}
