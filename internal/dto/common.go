package dto

import (
	"time"

	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AuditResponse carries audit fields in API responses.
type AuditResponse struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

func toAuditResponse(a domain.AuditFields) AuditResponse {
	return AuditResponse{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

// AllocationRequest is one proposed split of a parent amount onto a budget
// line. Rows with a blank budget line or non-positive amount are dropped
// by the validator rather than rejected, mirroring spreadsheet-style
// input where operators leave half-filled rows behind.
type AllocationRequest struct {
	BudgetLineID string          `json:"budgetLineID"`
	Amount       decimal.Decimal `json:"amount"`
}

// AllocationResponse defines the data returned for a stored allocation.
type AllocationResponse struct {
	AllocationID string          `json:"allocationID"`
	BudgetLineID string          `json:"budgetLineID"`
	Amount       decimal.Decimal `json:"amount"`
}

// ToAllocationRequests converts request rows to domain allocations.
// Identity and parent linkage are assigned by the service.
func ToAllocationRequests(rows []AllocationRequest) []domain.Allocation {
	allocations := make([]domain.Allocation, len(rows))
	for i, r := range rows {
		allocations[i] = domain.Allocation{
			BudgetLineID: r.BudgetLineID,
			Amount:       r.Amount,
		}
	}
	return allocations
}

// ToAllocationResponses converts stored allocations to response DTOs.
func ToAllocationResponses(allocations []domain.Allocation) []AllocationResponse {
	responses := make([]AllocationResponse, len(allocations))
	for i, a := range allocations {
		responses[i] = AllocationResponse{
			AllocationID: a.AllocationID,
			BudgetLineID: a.BudgetLineID,
			Amount:       a.Amount,
		}
	}
	return responses
}
