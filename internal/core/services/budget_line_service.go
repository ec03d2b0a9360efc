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
	ErrBudgetLineNameMissing     = errors.New("budget line name is required")
	ErrBudgetLineCategoryMissing = errors.New("budget line macro category is required")
)

// budgetLineService maintains the chart of planned cost categories.
type budgetLineService struct {
	budgetLineRepo portsrepo.BudgetLineRepositoryWithTx
	settingsSvc    portssvc.SettingsSvcFacade
}

// NewBudgetLineService creates a new BudgetLineService.
func NewBudgetLineService(budgetLineRepo portsrepo.BudgetLineRepositoryWithTx, settingsSvc portssvc.SettingsSvcFacade) portssvc.BudgetLineSvcFacade {
	return &budgetLineService{
		budgetLineRepo: budgetLineRepo,
		settingsSvc:    settingsSvc,
	}
}

var _ portssvc.BudgetLineSvcFacade = (*budgetLineService)(nil)

// validateFields checks the shared field rules for create and update. The
// planned total is derived, so only its inputs are validated here.
func (s *budgetLineService) validateFields(ctx context.Context, name, macroCategory, currencyCode string, unitCost, quantity decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrBudgetLineNameMissing)
	}
	if strings.TrimSpace(macroCategory) == "" {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrBudgetLineCategoryMissing)
	}
	if unitCost.IsNegative() {
		return fmt.Errorf("%w: unit cost must not be negative", apperrors.ErrValidation)
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings for currency check: %w", err)
	}
	if !settings.IsKnownCurrency(currencyCode) {
		return fmt.Errorf("%w: currency %q is not one of the configured currencies (%s, %s)",
			apperrors.ErrValidation, currencyCode, settings.ReportingCurrency, settings.SecondaryCurrency)
	}
	return nil
}

// CreateBudgetLine validates and persists a new budget line.
func (s *budgetLineService) CreateBudgetLine(ctx context.Context, req dto.CreateBudgetLineRequest, creatorUserID string) (*domain.BudgetLine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateFields(ctx, req.Name, req.MacroCategory, req.CurrencyCode, req.UnitCost, req.Quantity); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	line := domain.BudgetLine{
		BudgetLineID:  uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		MacroCategory: strings.TrimSpace(req.MacroCategory),
		UnitCost:      req.UnitCost,
		CurrencyCode:  req.CurrencyCode,
		Quantity:      req.Quantity,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.budgetLineRepo.SaveBudgetLine(ctx, line); err != nil {
		logger.Error("Failed to save budget line", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save budget line: %w", err)
	}

	logger.Info("Budget line created", slog.String("budget_line_id", line.BudgetLineID), slog.String("name", line.Name))
	return &line, nil
}

// UpdateBudgetLine replaces all fields of an existing line. There are no
// partial-field semantics.
func (s *budgetLineService) UpdateBudgetLine(ctx context.Context, budgetLineID string, req dto.UpdateBudgetLineRequest, updaterUserID string) (*domain.BudgetLine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateFields(ctx, req.Name, req.MacroCategory, req.CurrencyCode, req.UnitCost, req.Quantity); err != nil {
		return nil, err
	}

	existing, err := s.budgetLineRepo.FindBudgetLineByID(ctx, budgetLineID)
	if err != nil {
		return nil, err
	}

	line := domain.BudgetLine{
		BudgetLineID:  budgetLineID,
		Name:          strings.TrimSpace(req.Name),
		MacroCategory: strings.TrimSpace(req.MacroCategory),
		UnitCost:      req.UnitCost,
		CurrencyCode:  req.CurrencyCode,
		Quantity:      req.Quantity,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			CreatedBy:     existing.CreatedBy,
			LastUpdatedAt: time.Now().UTC(),
			LastUpdatedBy: updaterUserID,
		},
	}

	if err := s.budgetLineRepo.UpdateBudgetLine(ctx, line); err != nil {
		logger.Error("Failed to update budget line", slog.String("error", err.Error()), slog.String("budget_line_id", budgetLineID))
		return nil, err
	}

	logger.Info("Budget line updated", slog.String("budget_line_id", budgetLineID))
	return &line, nil
}

// DeleteBudgetLine removes the line. Allocations referencing it are
// cascade-deleted by the repository within one database transaction, so
// no dangling references survive.
func (s *budgetLineService) DeleteBudgetLine(ctx context.Context, budgetLineID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.budgetLineRepo.DeleteBudgetLine(ctx, budgetLineID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete budget line", slog.String("error", err.Error()), slog.String("budget_line_id", budgetLineID))
		}
		return err
	}

	logger.Info("Budget line deleted", slog.String("budget_line_id", budgetLineID))
	return nil
}

// GetBudgetLineByID retrieves a single budget line.
func (s *budgetLineService) GetBudgetLineByID(ctx context.Context, budgetLineID string) (*domain.BudgetLine, error) {
	return s.budgetLineRepo.FindBudgetLineByID(ctx, budgetLineID)
}

// ListBudgetLines retrieves the whole chart.
func (s *budgetLineService) ListBudgetLines(ctx context.Context) ([]domain.BudgetLine, error) {
	return s.budgetLineRepo.ListBudgetLines(ctx)
}
