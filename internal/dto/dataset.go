package dto

import "github.com/evfin/event_finance_app/internal/core/domain"

// DatasetResponse is the full current ledger state for the UI: settings,
// the chart of budget lines, and both ledgers with their allocations.
type DatasetResponse struct {
	Settings     SettingsResponse      `json:"settings"`
	BudgetLines  []BudgetLineResponse  `json:"budgetLines"`
	Transactions []TransactionResponse `json:"transactions"`
	Sponsorships []SponsorshipResponse `json:"sponsorships"`
}

// ToDatasetResponse converts a domain.Dataset to its response DTO.
func ToDatasetResponse(d *domain.Dataset) DatasetResponse {
	txns := make([]TransactionResponse, len(d.Transactions))
	for i := range d.Transactions {
		txns[i] = ToTransactionResponse(&d.Transactions[i])
	}
	sponsorships := make([]SponsorshipResponse, len(d.Sponsorships))
	for i := range d.Sponsorships {
		sponsorships[i] = ToSponsorshipResponse(&d.Sponsorships[i])
	}
	return DatasetResponse{
		Settings:     ToSettingsResponse(&d.Settings),
		BudgetLines:  ToListBudgetLineResponse(d.BudgetLines),
		Transactions: txns,
		Sponsorships: sponsorships,
	}
}
