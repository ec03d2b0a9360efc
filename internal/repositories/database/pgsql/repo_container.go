package pgsql

import (
	portsrepo "github.com/evfin/event_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	budgetLineRepo := newPgxBudgetLineRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	sponsorshipRepo := newPgxSponsorshipRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)

	return portsrepo.RepositoryProvider{
		BudgetLineRepo:  budgetLineRepo,
		TransactionRepo: transactionRepo,
		SponsorshipRepo: sponsorshipRepo,
		SettingsRepo:    settingsRepo,
	}
}
