package domain

import "github.com/shopspring/decimal"

// SettingsID is the identity of the single settings row. The ledger keeps
// exactly one current configuration; there is no historical versioning of
// the exchange rate, so rollups are always snapshots at today's rate.
const SettingsID = "app"

// Settings is the event-wide configuration read by every conversion and
// rollup: the pair of currencies in play, the current exchange rate and
// the list of valid account labels.
type Settings struct {
	SettingsID        string          `json:"settingsID"`
	EventName         string          `json:"eventName"`
	ReportingCurrency string          `json:"reportingCurrency"` // e.g. "EUR"
	SecondaryCurrency string          `json:"secondaryCurrency"` // e.g. "HUF"
	ExchangeRate      decimal.Decimal `json:"exchangeRate"`      // secondary units per one reporting unit; strictly positive
	Accounts          []string        `json:"accounts"`          // valid account labels for transactions/sponsorships
	AuditFields
}

// IsKnownCurrency reports whether code is one of the two configured currencies.
func (s Settings) IsKnownCurrency(code string) bool {
	return code == s.ReportingCurrency || code == s.SecondaryCurrency
}

// IsKnownAccount reports whether label is in the configured account list.
// An empty label is always acceptable: it means "no account".
func (s Settings) IsKnownAccount(label string) bool {
	if label == "" {
		return true
	}
	for _, a := range s.Accounts {
		if a == label {
			return true
		}
	}
	return false
}
