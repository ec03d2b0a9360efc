package mapping

import (
	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/evfin/event_finance_app/internal/models"
)

// ToModelSettings converts domain Settings to the model row.
func ToModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		SettingsID:        d.SettingsID,
		EventName:         d.EventName,
		ReportingCurrency: d.ReportingCurrency,
		SecondaryCurrency: d.SecondaryCurrency,
		ExchangeRate:      d.ExchangeRate,
		Accounts:          d.Accounts,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSettings converts the model row to domain Settings.
func ToDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		SettingsID:        m.SettingsID,
		EventName:         m.EventName,
		ReportingCurrency: m.ReportingCurrency,
		SecondaryCurrency: m.SecondaryCurrency,
		ExchangeRate:      m.ExchangeRate,
		Accounts:          m.Accounts,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
