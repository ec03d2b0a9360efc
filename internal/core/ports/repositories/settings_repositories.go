package repositories

import (
	"context"

	"github.com/evfin/event_finance_app/internal/core/domain"
)

// SettingsRepository persists the single settings record.
type SettingsRepository interface {
	// GetSettings retrieves the current settings. Returns
	// apperrors.ErrNotFound when the row has never been written.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// SaveSettings upserts the settings row.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
