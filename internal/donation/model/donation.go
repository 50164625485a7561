// Package model provides domain models and DTOs for the donation module.
package model

import "time"

// Record types sharing the donation pipeline. A reimbursement is
// distinguished only by its tag and checkout messaging.
const (
	TypeDonation      = "donation"
	TypeReimbursement = "reimbursement"
)

// Payment status values, same lifecycle as registrations.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// MinimumAmountCents is the smallest accepted donation ($1.00).
const MinimumAmountCents = 100

// Donation represents a donation or reimbursement payment record.
// Matches the donations table schema. No team relationship, no capacity
// interaction.
type Donation struct {
	ID         uint   `gorm:"primaryKey;column:id" json:"id"`
	Type       string `gorm:"column:type;default:donation" json:"type"`
	DonorName  string `gorm:"column:donor_name" json:"donorName"`
	DonorEmail string `gorm:"column:donor_email" json:"donorEmail"`
	Comment    string `gorm:"column:comment" json:"comment"`

	AmountCents             int        `gorm:"column:amount_cents;not null" json:"amountCents"`
	Currency                string     `gorm:"column:currency;default:usd" json:"currency"`
	StripeCheckoutSessionID string     `gorm:"column:stripe_checkout_session_id" json:"stripeCheckoutSessionId"`
	StripePaymentIntentID   string     `gorm:"column:stripe_payment_intent_id" json:"stripePaymentIntentId"`
	PaymentStatus           string     `gorm:"column:payment_status;default:unpaid" json:"paymentStatus"`
	PaidAt                  *time.Time `gorm:"column:paid_at" json:"paidAt"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (Donation) TableName() string {
	return "donations"
}
