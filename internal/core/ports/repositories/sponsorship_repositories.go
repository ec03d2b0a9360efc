package repositories

import (
	"context"

	"github.com/evfin/event_finance_app/internal/core/domain"
)

// SponsorshipReader defines read operations for sponsorship data.
// Returned sponsorships always carry their full allocation set.
type SponsorshipReader interface {
	// FindSponsorshipByID retrieves a sponsorship and its allocations.
	FindSponsorshipByID(ctx context.Context, sponsorshipID string) (*domain.Sponsorship, error)

	// ListSponsorships retrieves a page of sponsorships ordered by
	// creation time descending using token-based pagination.
	ListSponsorships(ctx context.Context, limit int, nextToken *string) ([]domain.Sponsorship, *string, error)

	// ListAllSponsorships retrieves every sponsorship with allocations,
	// for reporting and export. Cancelled sponsorships are included;
	// filtering is reporting policy, not storage policy.
	ListAllSponsorships(ctx context.Context) ([]domain.Sponsorship, error)
}

// SponsorshipWriter defines write operations for sponsorship data.
type SponsorshipWriter interface {
	// SaveSponsorship inserts the sponsorship row and its allocations in
	// one database transaction.
	SaveSponsorship(ctx context.Context, s domain.Sponsorship, allocations []domain.Allocation) error

	// UpdateSponsorship replaces the row's fields and the full allocation
	// set (delete-then-insert) in one database transaction. Returns
	// apperrors.ErrNotFound if no row matched.
	UpdateSponsorship(ctx context.Context, s domain.Sponsorship, allocations []domain.Allocation) error

	// DeleteSponsorship removes the sponsorship and its allocations.
	// Returns apperrors.ErrNotFound if no row matched.
	DeleteSponsorship(ctx context.Context, sponsorshipID string) error
}

// SponsorshipRepositoryFacade combines all sponsorship repository interfaces.
type SponsorshipRepositoryFacade interface {
	SponsorshipReader
	SponsorshipWriter
}

// SponsorshipRepositoryWithTx extends the facade with transaction capabilities.
type SponsorshipRepositoryWithTx interface {
	SponsorshipRepositoryFacade
	TransactionManager
}
