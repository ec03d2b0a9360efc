package services

import (
	"context"

	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/evfin/event_finance_app/internal/dto"
)

// SettingsSvcFacade manages the single event configuration record.
type SettingsSvcFacade interface {
	// GetSettings retrieves the current configuration.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// UpdateSettings replaces the configuration. The exchange rate must be
	// strictly positive and the two currencies distinct.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updaterUserID string) (*domain.Settings, error)
}
