package domain

// Dataset is the full current state of the ledger, returned in one read
// for the UI to render and for rollup computation against a consistent-ish
// snapshot. Reads are not required to be transactionally consistent
// across the record families; this is a back-office reporting tool.
type Dataset struct {
	Settings     Settings      `json:"settings"`
	BudgetLines  []BudgetLine  `json:"budgetLines"`
	Transactions []Transaction `json:"transactions"`
	Sponsorships []Sponsorship `json:"sponsorships"`
}
