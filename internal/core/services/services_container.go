package services

import (
	portsrepo "github.com/evfin/event_finance_app/internal/core/ports/repositories"
	portssvc "github.com/evfin/event_finance_app/internal/core/ports/services"
)

// NewServiceContainer wires the repositories into the service facades.
// Settings is built first because the record services consult it for
// currency and account validation.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	settingsSvc := NewSettingsService(repos.SettingsRepo)
	budgetLineSvc := NewBudgetLineService(repos.BudgetLineRepo, settingsSvc)
	transactionSvc := NewTransactionService(repos.TransactionRepo, repos.BudgetLineRepo, settingsSvc)
	sponsorshipSvc := NewSponsorshipService(repos.SponsorshipRepo, repos.BudgetLineRepo, settingsSvc)
	reportingSvc := NewReportingService(repos.BudgetLineRepo, repos.TransactionRepo, repos.SponsorshipRepo, repos.SettingsRepo)

	return &portssvc.ServiceContainer{
		Settings:    settingsSvc,
		BudgetLine:  budgetLineSvc,
		Transaction: transactionSvc,
		Sponsorship: sponsorshipSvc,
		Reporting:   reportingSvc,
	}
}
