package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evfin/event_finance_app/internal/apperrors"
	"github.com/evfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/evfin/event_finance_app/internal/core/ports/repositories"
	"github.com/evfin/event_finance_app/internal/dto"
	"github.com/evfin/event_finance_app/internal/utils/allocation"
)

// prepareAllocations turns request rows into the persistable allocation
// set for a parent record: lenient rows are dropped, the sum is checked
// against the parent's reference total, every referenced budget line must
// exist, and fresh identities plus audit fields are assigned. Both the
// transaction and sponsorship services go through here so the two
// allocation flavors cannot drift apart.
func prepareAllocations(
	ctx context.Context,
	rows []dto.AllocationRequest,
	parent domain.Allocatable,
	parentID string,
	budgetLineRepo portsrepo.BudgetLineReader,
	userID string,
	now time.Time,
) ([]domain.Allocation, error) {
	kept, err := allocation.NormalizeAndValidate(dto.ToAllocationRequests(rows), parent)
	if err != nil {
		return nil, err
	}
	if len(kept) == 0 {
		return nil, nil
	}

	lines, err := budgetLineRepo.ListBudgetLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budget lines for allocation check: %w", err)
	}
	known := make(map[string]bool, len(lines))
	for _, line := range lines {
		known[line.BudgetLineID] = true
	}

	for i := range kept {
		if !known[kept[i].BudgetLineID] {
			return nil, fmt.Errorf("%w: budget line %s does not exist", apperrors.ErrValidation, kept[i].BudgetLineID)
		}
		kept[i].AllocationID = uuid.NewString()
		kept[i].ParentID = parentID
		kept[i].AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		}
	}
	return kept, nil
}
