package dto

import (
	"time"

	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSponsorshipRequest defines the payload for recording a sponsor
// commitment. Allocations, when present, must sum to the pledged amount.
type CreateSponsorshipRequest struct {
	SponsorName   string              `json:"sponsorName" binding:"required"`
	Description   string              `json:"description"`
	PledgedAmount decimal.Decimal     `json:"pledgedAmount" binding:"required"`
	PaidAmount    decimal.Decimal     `json:"paidAmount"`
	CurrencyCode  string              `json:"currencyCode" binding:"required,len=3,uppercase"`
	Status        string              `json:"status" binding:"required,oneof=PLEDGED PARTIALLY_PAID PAID CANCELLED"`
	ExpectedDate  *time.Time          `json:"expectedDate"`
	ReceivedDate  *time.Time          `json:"receivedDate"`
	PaymentMethod string              `json:"paymentMethod" binding:"required,oneof=BANK_TRANSFER CARD CASH OTHER"`
	Account       string              `json:"account"`
	Notes         string              `json:"notes"`
	Allocations   []AllocationRequest `json:"allocations"`
}

// UpdateSponsorshipRequest replaces the sponsorship's fields and its full
// allocation set.
type UpdateSponsorshipRequest = CreateSponsorshipRequest

// SponsorshipResponse defines the data returned for a sponsorship.
type SponsorshipResponse struct {
	SponsorshipID string               `json:"sponsorshipID"`
	SponsorName   string               `json:"sponsorName"`
	Description   string               `json:"description"`
	PledgedAmount decimal.Decimal      `json:"pledgedAmount"`
	PaidAmount    decimal.Decimal      `json:"paidAmount"`
	CurrencyCode  string               `json:"currencyCode"`
	Status        string               `json:"status"`
	ExpectedDate  *time.Time           `json:"expectedDate"`
	ReceivedDate  *time.Time           `json:"receivedDate"`
	PaymentMethod string               `json:"paymentMethod"`
	Account       string               `json:"account"`
	Notes         string               `json:"notes"`
	Allocations   []AllocationResponse `json:"allocations"`
	AuditResponse
}

// ListSponsorshipsResponse is a page of sponsorships plus the token for
// the next page.
type ListSponsorshipsResponse struct {
	Sponsorships []SponsorshipResponse `json:"sponsorships"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToSponsorshipResponse converts a domain.Sponsorship to its response DTO.
func ToSponsorshipResponse(s *domain.Sponsorship) SponsorshipResponse {
	return SponsorshipResponse{
		SponsorshipID: s.SponsorshipID,
		SponsorName:   s.SponsorName,
		Description:   s.Description,
		PledgedAmount: s.PledgedAmount,
		PaidAmount:    s.PaidAmount,
		CurrencyCode:  s.CurrencyCode,
		Status:        string(s.Status),
		ExpectedDate:  s.ExpectedDate,
		ReceivedDate:  s.ReceivedDate,
		PaymentMethod: string(s.PaymentMethod),
		Account:       s.Account,
		Notes:         s.Notes,
		Allocations:   ToAllocationResponses(s.Allocations),
		AuditResponse: toAuditResponse(s.AuditFields),
	}
}

// ToListSponsorshipsResponse converts a page of domain sponsorships.
func ToListSponsorshipsResponse(sponsorships []domain.Sponsorship, nextToken *string) ListSponsorshipsResponse {
	responses := make([]SponsorshipResponse, len(sponsorships))
	for i := range sponsorships {
		responses[i] = ToSponsorshipResponse(&sponsorships[i])
	}
	return ListSponsorshipsResponse{Sponsorships: responses, NextToken: nextToken}
}
