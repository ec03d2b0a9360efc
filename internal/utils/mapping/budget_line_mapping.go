package mapping

import (
	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/evfin/event_finance_app/internal/models"
)

// ToModelBudgetLine converts a domain BudgetLine to a model BudgetLine.
func ToModelBudgetLine(d domain.BudgetLine) models.BudgetLine {
	return models.BudgetLine{
		BudgetLineID:  d.BudgetLineID,
		Name:          d.Name,
		MacroCategory: d.MacroCategory,
		UnitCost:      d.UnitCost,
		CurrencyCode:  d.CurrencyCode,
		Quantity:      d.Quantity,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudgetLine converts a model BudgetLine to a domain BudgetLine.
func ToDomainBudgetLine(m models.BudgetLine) domain.BudgetLine {
	return domain.BudgetLine{
		BudgetLineID:  m.BudgetLineID,
		Name:          m.Name,
		MacroCategory: m.MacroCategory,
		UnitCost:      m.UnitCost,
		CurrencyCode:  m.CurrencyCode,
		Quantity:      m.Quantity,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
