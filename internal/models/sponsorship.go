package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SponsorshipStatus mirrors domain.SponsorshipStatus at the storage layer.
type SponsorshipStatus string

const (
	SponsorshipPledged       SponsorshipStatus = "PLEDGED"
	SponsorshipPartiallyPaid SponsorshipStatus = "PARTIALLY_PAID"
	SponsorshipPaid          SponsorshipStatus = "PAID"
	SponsorshipCancelled     SponsorshipStatus = "CANCELLED"
)

// Sponsorship is the sponsorships table row.
type Sponsorship struct {
	SponsorshipID string            `json:"sponsorshipID"`
	SponsorName   string            `json:"sponsorName"`
	Description   string            `json:"description"`
	PledgedAmount decimal.Decimal   `json:"pledgedAmount"`
	PaidAmount    decimal.Decimal   `json:"paidAmount"`
	CurrencyCode  string            `json:"currencyCode"`
	Status        SponsorshipStatus `json:"status"`
	ExpectedDate  *time.Time        `json:"expectedDate"`
	ReceivedDate  *time.Time        `json:"receivedDate"`
	PaymentMethod string            `json:"paymentMethod"`
	Account       string            `json:"account"`
	Notes         string            `json:"notes"`
	AuditFields
}

// SponsorshipAllocation is the sponsorship_allocations table row.
type SponsorshipAllocation struct {
	AllocationID  string          `json:"allocationID"`
	SponsorshipID string          `json:"sponsorshipID"`
	BudgetLineID  string          `json:"budgetLineID"`
	Amount        decimal.Decimal `json:"amount"`
	AuditFields
}
