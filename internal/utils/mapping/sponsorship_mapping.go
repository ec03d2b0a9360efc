package mapping

import (
	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/evfin/event_finance_app/internal/models"
)

// ToModelSponsorship converts a domain Sponsorship to a model Sponsorship.
func ToModelSponsorship(d domain.Sponsorship) models.Sponsorship {
	return models.Sponsorship{
		SponsorshipID: d.SponsorshipID,
		SponsorName:   d.SponsorName,
		Description:   d.Description,
		PledgedAmount: d.PledgedAmount,
		PaidAmount:    d.PaidAmount,
		CurrencyCode:  d.CurrencyCode,
		Status:        models.SponsorshipStatus(d.Status),
		ExpectedDate:  d.ExpectedDate,
		ReceivedDate:  d.ReceivedDate,
		PaymentMethod: string(d.PaymentMethod),
		Account:       d.Account,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSponsorship converts a model Sponsorship to a domain Sponsorship.
func ToDomainSponsorship(m models.Sponsorship) domain.Sponsorship {
	return domain.Sponsorship{
		SponsorshipID: m.SponsorshipID,
		SponsorName:   m.SponsorName,
		Description:   m.Description,
		PledgedAmount: m.PledgedAmount,
		PaidAmount:    m.PaidAmount,
		CurrencyCode:  m.CurrencyCode,
		Status:        domain.SponsorshipStatus(m.Status),
		ExpectedDate:  m.ExpectedDate,
		ReceivedDate:  m.ReceivedDate,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Account:       m.Account,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSponsorshipAllocation converts a domain Allocation owned by a
// sponsorship to its model row.
func ToModelSponsorshipAllocation(d domain.Allocation) models.SponsorshipAllocation {
	return models.SponsorshipAllocation{
		AllocationID:  d.AllocationID,
		SponsorshipID: d.ParentID,
		BudgetLineID:  d.BudgetLineID,
		Amount:        d.Amount,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSponsorshipAllocation converts a model row back to a domain Allocation.
func ToDomainSponsorshipAllocation(m models.SponsorshipAllocation) domain.Allocation {
	return domain.Allocation{
		AllocationID: m.AllocationID,
		ParentID:     m.SponsorshipID,
		BudgetLineID: m.BudgetLineID,
		Amount:       m.Amount,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
