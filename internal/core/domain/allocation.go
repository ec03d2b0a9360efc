package domain

import "github.com/shopspring/decimal"

// Allocation splits a slice of a parent record's amount onto one budget
// line. The same shape serves both transaction and sponsorship splits;
// ParentID is the owning transaction or sponsorship ID.
type Allocation struct {
	AllocationID string          `json:"allocationID"`
	ParentID     string          `json:"parentID"`
	BudgetLineID string          `json:"budgetLineID"`
	Amount       decimal.Decimal `json:"amount"` // native currency of the parent
	AuditFields
}

// Allocatable is any record whose allocations must sum to a reference
// total. Transactions allocate their amount, sponsorships their pledged
// amount; the validator is written once against this interface.
type Allocatable interface {
	AllocationTotal() decimal.Decimal
}
