package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// PaymentMethod is the channel a cash movement travelled through.
type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCard         PaymentMethod = "CARD"
	PaymentCash         PaymentMethod = "CASH"
	PaymentOther        PaymentMethod = "OTHER"
)

// IsValid reports whether the payment method is one of the known values.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentBankTransfer, PaymentCard, PaymentCash, PaymentOther:
		return true
	}
	return false
}
