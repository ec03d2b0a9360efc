package repositories

// RepositoryProvider bundles every repository implementation for service
// container construction.
type RepositoryProvider struct {
	BudgetLineRepo  BudgetLineRepositoryWithTx
	TransactionRepo TransactionRepositoryWithTx
	SponsorshipRepo SponsorshipRepositoryWithTx
	SettingsRepo    SettingsRepository
}
