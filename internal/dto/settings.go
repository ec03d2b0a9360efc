package dto

import (
	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest replaces the event-wide configuration. The rate is
// "secondary units per one reporting unit" and must be strictly positive;
// that check lives in the service so the message can quote the value.
type UpdateSettingsRequest struct {
	EventName         string          `json:"eventName" binding:"required"`
	ReportingCurrency string          `json:"reportingCurrency" binding:"required,len=3,uppercase"`
	SecondaryCurrency string          `json:"secondaryCurrency" binding:"required,len=3,uppercase"`
	ExchangeRate      decimal.Decimal `json:"exchangeRate" binding:"required"`
	Accounts          []string        `json:"accounts"`
}

// SettingsResponse defines the data returned for the settings record.
type SettingsResponse struct {
	EventName         string          `json:"eventName"`
	ReportingCurrency string          `json:"reportingCurrency"`
	SecondaryCurrency string          `json:"secondaryCurrency"`
	ExchangeRate      decimal.Decimal `json:"exchangeRate"`
	Accounts          []string        `json:"accounts"`
	AuditResponse
}

// ToSettingsResponse converts domain.Settings to its response DTO.
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		EventName:         s.EventName,
		ReportingCurrency: s.ReportingCurrency,
		SecondaryCurrency: s.SecondaryCurrency,
		ExchangeRate:      s.ExchangeRate,
		Accounts:          s.Accounts,
		AuditResponse:     toAuditResponse(s.AuditFields),
	}
}
