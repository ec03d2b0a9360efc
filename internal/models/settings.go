package models

import "github.com/shopspring/decimal"

// Settings is the single settings table row. Account labels are stored as
// a text array column.
type Settings struct {
	SettingsID        string          `json:"settingsID"`
	EventName         string          `json:"eventName"`
	ReportingCurrency string          `json:"reportingCurrency"`
	SecondaryCurrency string          `json:"secondaryCurrency"`
	ExchangeRate      decimal.Decimal `json:"exchangeRate"`
	Accounts          []string        `json:"accounts"`
	AuditFields
}
