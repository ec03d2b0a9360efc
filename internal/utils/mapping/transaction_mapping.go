package mapping

import (
	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/evfin/event_finance_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Allocations are mapped separately; they live in their own table.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Type:          models.TransactionType(d.Type),
		Date:          d.Date,
		Description:   d.Description,
		Counterparty:  d.Counterparty,
		Amount:        d.Amount,
		CurrencyCode:  d.CurrencyCode,
		PaymentMethod: string(d.PaymentMethod),
		Account:       d.Account,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Type:          domain.TransactionType(m.Type),
		Date:          m.Date,
		Description:   m.Description,
		Counterparty:  m.Counterparty,
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Account:       m.Account,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransactionAllocation converts a domain Allocation owned by a
// transaction to its model row.
func ToModelTransactionAllocation(d domain.Allocation) models.TransactionAllocation {
	return models.TransactionAllocation{
		AllocationID:  d.AllocationID,
		TransactionID: d.ParentID,
		BudgetLineID:  d.BudgetLineID,
		Amount:        d.Amount,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransactionAllocation converts a model row back to a domain Allocation.
func ToDomainTransactionAllocation(m models.TransactionAllocation) domain.Allocation {
	return domain.Allocation{
		AllocationID: m.AllocationID,
		ParentID:     m.TransactionID,
		BudgetLineID: m.BudgetLineID,
		Amount:       m.Amount,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
