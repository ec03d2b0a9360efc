package services

import (
	"context"

	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/evfin/event_finance_app/internal/dto"
)

// SponsorshipSvcFacade defines the operations of the sponsorship ledger.
// Allocations validate against the pledged amount, and status moves are
// caller-driven within the allowed transitions.
type SponsorshipSvcFacade interface {
	CreateSponsorship(ctx context.Context, req dto.CreateSponsorshipRequest, creatorUserID string) (*domain.Sponsorship, error)
	UpdateSponsorship(ctx context.Context, sponsorshipID string, req dto.UpdateSponsorshipRequest, updaterUserID string) (*domain.Sponsorship, error)
	DeleteSponsorship(ctx context.Context, sponsorshipID string) error
	GetSponsorshipByID(ctx context.Context, sponsorshipID string) (*domain.Sponsorship, error)
	ListSponsorships(ctx context.Context, limit int, nextToken *string) ([]domain.Sponsorship, *string, error)
}
