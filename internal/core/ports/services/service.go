package services

// ServiceContainer bundles every service facade for handler registration.
type ServiceContainer struct {
	Settings    SettingsSvcFacade
	BudgetLine  BudgetLineSvcFacade
	Transaction TransactionSvcFacade
	Sponsorship SponsorshipSvcFacade
	Reporting   ReportingSvcFacade
}
