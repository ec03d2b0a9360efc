// Package allocation validates budget-line allocation sets against the
// parent record's reference total. It is used by both the transaction and
// sponsorship services so the sum invariant lives in exactly one place.
package allocation

import (
	"fmt"

	"github.com/evfin/event_finance_app/internal/apperrors"
	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Tolerance is the maximum accepted difference between the allocation sum
// and the parent total, in currency units.
var Tolerance = decimal.RequireFromString("0.01")

// Normalize drops allocation rows that cannot contribute to a valid set:
// rows with an empty budget line ID or a non-positive amount. Callers
// persist the normalized set, never the raw input, so the lenient-input
// policy and the strict sum check see the same rows.
func Normalize(allocations []domain.Allocation) []domain.Allocation {
	kept := make([]domain.Allocation, 0, len(allocations))
	for _, a := range allocations {
		if a.BudgetLineID == "" || a.Amount.LessThanOrEqual(decimal.Zero) {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

// Validate checks that the normalized allocation set sums to requiredTotal
// within Tolerance. An empty set is always valid: it means the parent's
// amount is unallocated general funds. The returned error reports both
// figures so back-office operators can correct their input.
func Validate(allocations []domain.Allocation, requiredTotal decimal.Decimal) error {
	if len(allocations) == 0 {
		return nil
	}

	sum := decimal.Zero
	for _, a := range allocations {
		sum = sum.Add(a.Amount)
	}

	if sum.Sub(requiredTotal).Abs().GreaterThan(Tolerance) {
		return fmt.Errorf("%w: allocations total (%s) must match amount (%s)",
			apperrors.ErrValidation, sum.StringFixed(2), requiredTotal.StringFixed(2))
	}
	return nil
}

// NormalizeAndValidate combines Normalize and Validate and returns the set
// that should be persisted.
func NormalizeAndValidate(allocations []domain.Allocation, parent domain.Allocatable) ([]domain.Allocation, error) {
	kept := Normalize(allocations)
	if err := Validate(kept, parent.AllocationTotal()); err != nil {
		return nil, err
	}
	return kept, nil
}
