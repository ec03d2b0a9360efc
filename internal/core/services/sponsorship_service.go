package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/evfin/event_finance_app/internal/apperrors"
	"github.com/evfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/evfin/event_finance_app/internal/core/ports/repositories"
	portssvc "github.com/evfin/event_finance_app/internal/core/ports/services"
	"github.com/evfin/event_finance_app/internal/dto"
	"github.com/evfin/event_finance_app/internal/middleware"
)

var (
	ErrSponsorNameMissing       = errors.New("sponsor name is required")
	ErrInvalidStatusTransition  = errors.New("invalid sponsorship status transition")
	ErrSponsorshipStatusInvalid = errors.New("unknown sponsorship status")
	ErrPledgedAmountNotPositive = errors.New("pledged amount must be positive")
	ErrPaidAmountNegative       = errors.New("paid amount must not be negative")
)

// sponsorshipService records sponsor commitments. Allocations distribute
// the pledged amount; the paid amount is tracked independently and never
// drives the status automatically.
type sponsorshipService struct {
	sponsorshipRepo portsrepo.SponsorshipRepositoryWithTx
	budgetLineRepo  portsrepo.BudgetLineReader
	settingsSvc     portssvc.SettingsSvcFacade
}

// NewSponsorshipService creates a new SponsorshipService.
func NewSponsorshipService(sponsorshipRepo portsrepo.SponsorshipRepositoryWithTx, budgetLineRepo portsrepo.BudgetLineReader, settingsSvc portssvc.SettingsSvcFacade) portssvc.SponsorshipSvcFacade {
	return &sponsorshipService{
		sponsorshipRepo: sponsorshipRepo,
		budgetLineRepo:  budgetLineRepo,
		settingsSvc:     settingsSvc,
	}
}

var _ portssvc.SponsorshipSvcFacade = (*sponsorshipService)(nil)

// validateRequest checks everything except the allocation set and the
// status transition.
func (s *sponsorshipService) validateRequest(ctx context.Context, req dto.CreateSponsorshipRequest) error {
	if strings.TrimSpace(req.SponsorName) == "" {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrSponsorNameMissing)
	}
	if !domain.SponsorshipStatus(req.Status).IsValid() {
		return fmt.Errorf("%w: %s: %q", apperrors.ErrValidation, ErrSponsorshipStatusInvalid, req.Status)
	}
	if req.PledgedAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPledgedAmountNotPositive)
	}
	if req.PaidAmount.IsNegative() {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPaidAmountNegative)
	}
	if !domain.PaymentMethod(req.PaymentMethod).IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}

	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings for sponsorship validation: %w", err)
	}
	if !settings.IsKnownCurrency(req.CurrencyCode) {
		return fmt.Errorf("%w: currency %q is not one of the configured currencies (%s, %s)",
			apperrors.ErrValidation, req.CurrencyCode, settings.ReportingCurrency, settings.SecondaryCurrency)
	}
	if !settings.IsKnownAccount(req.Account) {
		return fmt.Errorf("%w: account %q is not in the configured account list", apperrors.ErrValidation, req.Account)
	}
	return nil
}

// warnOnStatusDrift logs when the paid amount and status look out of
// step. The status is caller-owned, so this never blocks the write.
func warnOnStatusDrift(logger *slog.Logger, sp domain.Sponsorship) {
	if sp.Status == domain.SponsorshipPledged && sp.PaidAmount.IsPositive() {
		logger.Warn("Sponsorship has a paid amount but status is still PLEDGED",
			slog.String("sponsorship_id", sp.SponsorshipID),
			slog.String("paid_amount", sp.PaidAmount.String()))
	}
}

// buildSponsorship assembles the domain record from a request.
func buildSponsorship(id string, req dto.CreateSponsorshipRequest, audit domain.AuditFields) domain.Sponsorship {
	return domain.Sponsorship{
		SponsorshipID: id,
		SponsorName:   strings.TrimSpace(req.SponsorName),
		Description:   req.Description,
		PledgedAmount: req.PledgedAmount,
		PaidAmount:    req.PaidAmount,
		CurrencyCode:  req.CurrencyCode,
		Status:        domain.SponsorshipStatus(req.Status),
		ExpectedDate:  req.ExpectedDate,
		ReceivedDate:  req.ReceivedDate,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Account:       strings.TrimSpace(req.Account),
		Notes:         req.Notes,
		AuditFields:   audit,
	}
}

// CreateSponsorship validates and persists a new sponsorship with its
// allocation set in a single atomic write.
func (s *sponsorshipService) CreateSponsorship(ctx context.Context, req dto.CreateSponsorshipRequest, creatorUserID string) (*domain.Sponsorship, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateRequest(ctx, req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sponsorshipID := uuid.NewString()
	sp := buildSponsorship(sponsorshipID, req, domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	})

	// Allocations are validated against the pledged amount, never the
	// paid amount.
	allocations, err := prepareAllocations(ctx, req.Allocations, sp, sponsorshipID, s.budgetLineRepo, creatorUserID, now)
	if err != nil {
		return nil, err
	}

	if err := s.sponsorshipRepo.SaveSponsorship(ctx, sp, allocations); err != nil {
		logger.Error("Failed to save sponsorship", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save sponsorship: %w", err)
	}

	sp.Allocations = allocations
	warnOnStatusDrift(logger, sp)
	logger.Info("Sponsorship created",
		slog.String("sponsorship_id", sponsorshipID),
		slog.String("sponsor", sp.SponsorName),
		slog.String("pledged", sp.PledgedAmount.String()),
		slog.Int("allocations", len(allocations)))
	return &sp, nil
}

// UpdateSponsorship replaces the sponsorship's fields and its full
// allocation set. The status may only move forward along the payment
// progression, or to CANCELLED from anywhere.
func (s *sponsorshipService) UpdateSponsorship(ctx context.Context, sponsorshipID string, req dto.UpdateSponsorshipRequest, updaterUserID string) (*domain.Sponsorship, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.sponsorshipRepo.FindSponsorshipByID(ctx, sponsorshipID)
	if err != nil {
		return nil, err
	}

	if err := s.validateRequest(ctx, req); err != nil {
		return nil, err
	}

	newStatus := domain.SponsorshipStatus(req.Status)
	if !existing.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w: %s: %s -> %s",
			apperrors.ErrValidation, ErrInvalidStatusTransition, existing.Status, newStatus)
	}

	now := time.Now().UTC()
	sp := buildSponsorship(sponsorshipID, req, domain.AuditFields{
		CreatedAt:     existing.CreatedAt,
		CreatedBy:     existing.CreatedBy,
		LastUpdatedAt: now,
		LastUpdatedBy: updaterUserID,
	})

	allocations, err := prepareAllocations(ctx, req.Allocations, sp, sponsorshipID, s.budgetLineRepo, updaterUserID, now)
	if err != nil {
		return nil, err
	}

	if err := s.sponsorshipRepo.UpdateSponsorship(ctx, sp, allocations); err != nil {
		logger.Error("Failed to update sponsorship", slog.String("error", err.Error()), slog.String("sponsorship_id", sponsorshipID))
		return nil, err
	}

	sp.Allocations = allocations
	warnOnStatusDrift(logger, sp)
	logger.Info("Sponsorship updated", slog.String("sponsorship_id", sponsorshipID), slog.String("status", string(sp.Status)))
	return &sp, nil
}

// DeleteSponsorship removes the sponsorship and its allocations.
func (s *sponsorshipService) DeleteSponsorship(ctx context.Context, sponsorshipID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.sponsorshipRepo.DeleteSponsorship(ctx, sponsorshipID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete sponsorship", slog.String("error", err.Error()), slog.String("sponsorship_id", sponsorshipID))
		}
		return err
	}

	logger.Info("Sponsorship deleted", slog.String("sponsorship_id", sponsorshipID))
	return nil
}

// GetSponsorshipByID retrieves a sponsorship and its allocations.
func (s *sponsorshipService) GetSponsorshipByID(ctx context.Context, sponsorshipID string) (*domain.Sponsorship, error) {
	return s.sponsorshipRepo.FindSponsorshipByID(ctx, sponsorshipID)
}

// ListSponsorships retrieves a page of sponsorships.
func (s *sponsorshipService) ListSponsorships(ctx context.Context, limit int, nextToken *string) ([]domain.Sponsorship, *string, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.sponsorshipRepo.ListSponsorships(ctx, limit, nextToken)
}
