package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/evfin/event_finance_app/internal/apperrors"
	"github.com/evfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/evfin/event_finance_app/internal/core/ports/repositories"
	"github.com/evfin/event_finance_app/internal/models"
	"github.com/evfin/event_finance_app/internal/utils/mapping"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for the settings row.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// GetSettings retrieves the single settings row.
func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT settings_id, event_name, reporting_currency, secondary_currency, exchange_rate, accounts,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM settings
		WHERE settings_id = $1;
	`
	var m models.Settings
	err := r.Pool.QueryRow(ctx, query, domain.SettingsID).Scan(
		&m.SettingsID,
		&m.EventName,
		&m.ReportingCurrency,
		&m.SecondaryCurrency,
		&m.ExchangeRate,
		&m.Accounts,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find settings", err)
	}

	settings := mapping.ToDomainSettings(m)
	return &settings, nil
}

// SaveSettings upserts the settings row. The identity is fixed, so the
// upsert always targets the same row.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	m := mapping.ToModelSettings(settings)
	query := `
		INSERT INTO settings (
			settings_id, event_name, reporting_currency, secondary_currency, exchange_rate, accounts,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (settings_id) DO UPDATE SET
			event_name = EXCLUDED.event_name,
			reporting_currency = EXCLUDED.reporting_currency,
			secondary_currency = EXCLUDED.secondary_currency,
			exchange_rate = EXCLUDED.exchange_rate,
			accounts = EXCLUDED.accounts,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SettingsID,
		m.EventName,
		m.ReportingCurrency,
		m.SecondaryCurrency,
		m.ExchangeRate,
		m.Accounts,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save settings", err)
	}
	return nil
}
