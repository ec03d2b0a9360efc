package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SponsorshipStatus is the caller-driven state of a sponsor commitment.
// It is deliberately not derived from the paid/pledged amounts.
type SponsorshipStatus string

const (
	SponsorshipPledged       SponsorshipStatus = "PLEDGED"
	SponsorshipPartiallyPaid SponsorshipStatus = "PARTIALLY_PAID"
	SponsorshipPaid          SponsorshipStatus = "PAID"
	SponsorshipCancelled     SponsorshipStatus = "CANCELLED"
)

// IsValid reports whether the status is one of the known values.
func (s SponsorshipStatus) IsValid() bool {
	switch s {
	case SponsorshipPledged, SponsorshipPartiallyPaid, SponsorshipPaid, SponsorshipCancelled:
		return true
	}
	return false
}

// statusRank orders the forward payment progression. CANCELLED sits
// outside the progression and is reachable from anywhere.
func (s SponsorshipStatus) rank() int {
	switch s {
	case SponsorshipPledged:
		return 0
	case SponsorshipPartiallyPaid:
		return 1
	case SponsorshipPaid:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether the status may move to next. Allowed
// moves are forward along PLEDGED -> PARTIALLY_PAID -> PAID (skipping
// steps is fine), staying put, and any -> CANCELLED.
func (s SponsorshipStatus) CanTransitionTo(next SponsorshipStatus) bool {
	if next == SponsorshipCancelled || next == s {
		return true
	}
	if s == SponsorshipCancelled {
		return false
	}
	return next.rank() > s.rank()
}

// Sponsorship records a sponsor commitment. Pledged and paid amounts are
// tracked independently; allocations distribute the pledged amount across
// budget lines. A cancelled sponsorship keeps its allocations but is
// excluded from every sponsored rollup.
type Sponsorship struct {
	SponsorshipID string            `json:"sponsorshipID"`
	SponsorName   string            `json:"sponsorName"`
	Description   string            `json:"description"`
	PledgedAmount decimal.Decimal   `json:"pledgedAmount"` // positive, native currency
	PaidAmount    decimal.Decimal   `json:"paidAmount"`    // non-negative, native currency
	CurrencyCode  string            `json:"currencyCode"`
	Status        SponsorshipStatus `json:"status"`
	ExpectedDate  *time.Time        `json:"expectedDate"`
	ReceivedDate  *time.Time        `json:"receivedDate"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	Account       string            `json:"account"`
	Notes         string            `json:"notes"`
	Allocations   []Allocation      `json:"allocations"`
	AuditFields
}

// AllocationTotal implements Allocatable: sponsorship allocations must sum
// to the pledged amount, not the paid amount.
func (s Sponsorship) AllocationTotal() decimal.Decimal {
	return s.PledgedAmount
}
