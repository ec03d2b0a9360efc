package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/evfin/event_finance_app/internal/apperrors"
	"github.com/evfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/evfin/event_finance_app/internal/core/ports/repositories"
	portssvc "github.com/evfin/event_finance_app/internal/core/ports/services"
	"github.com/evfin/event_finance_app/internal/dto"
	"github.com/evfin/event_finance_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// settingsService manages the single event configuration record.
type settingsService struct {
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetSettings retrieves the current settings.
func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings replaces the event configuration after validation.
func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updaterUserID string) (*domain.Settings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive, got %s",
			apperrors.ErrValidation, req.ExchangeRate.String())
	}

	reporting := strings.ToUpper(strings.TrimSpace(req.ReportingCurrency))
	secondary := strings.ToUpper(strings.TrimSpace(req.SecondaryCurrency))
	if reporting == secondary {
		return nil, fmt.Errorf("%w: reporting and secondary currencies must differ", apperrors.ErrValidation)
	}

	// Account labels are a closed list for form consistency; blank and
	// duplicate entries are silently dropped.
	accounts := make([]string, 0, len(req.Accounts))
	seen := make(map[string]bool)
	for _, a := range req.Accounts {
		label := strings.TrimSpace(a)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		accounts = append(accounts, label)
	}

	now := time.Now().UTC()
	settings := domain.Settings{
		SettingsID:        domain.SettingsID,
		EventName:         strings.TrimSpace(req.EventName),
		ReportingCurrency: reporting,
		SecondaryCurrency: secondary,
		ExchangeRate:      req.ExchangeRate,
		Accounts:          accounts,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}

	// Preserve original creation attribution on subsequent updates.
	if existing, err := s.settingsRepo.GetSettings(ctx); err == nil {
		settings.CreatedAt = existing.CreatedAt
		settings.CreatedBy = existing.CreatedBy
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		logger.Error("Failed to save settings", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	logger.Info("Settings updated",
		slog.String("event_name", settings.EventName),
		slog.String("exchange_rate", settings.ExchangeRate.String()))
	return &settings, nil
}
