// Package payment wraps the hosted checkout provider behind a narrow seam.
// All provider interaction in the application funnels through Gateway so the
// provider stays swappable and services never touch its wire protocol.
package payment

import (
	"context"
	"errors"
)

// PaymentStatusPaid is the provider's terminal success status for a session.
const PaymentStatusPaid = "paid"

// EventCheckoutCompleted is the webhook event type signalling a completed
// checkout session.
const EventCheckoutCompleted = "checkout.session.completed"

// ErrInvalidSignature indicates a webhook payload whose signature did not
// verify against the signing secret. No state change may follow it.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// CheckoutParams describes a checkout session to create.
type CheckoutParams struct {
	// AmountCents is the fixed charge in minor currency units.
	AmountCents int64
	// ProductName is the human-readable line item name.
	ProductName string
	// Description is the line item description shown on the hosted page.
	Description string
	// CustomerEmail, when set, prefills the payer email and triggers a receipt.
	CustomerEmail string
	// CorrelationKey and CorrelationID are embedded as opaque session
	// metadata so verify/webhook can find the matching record later.
	CorrelationKey string
	CorrelationID  string
	// SuccessURL and CancelURL are the return URLs after checkout.
	SuccessURL string
	CancelURL  string
}

// Session is a created checkout session.
type Session struct {
	ID  string
	URL string
}

// SessionStatus is the provider's view of an existing session.
type SessionStatus struct {
	// PaymentStatus is the provider's raw status string (e.g. "paid").
	PaymentStatus string
	// PaymentIntentID is the payment confirmation identifier, set once paid.
	PaymentIntentID string
	// Metadata carries back the correlation identifiers.
	Metadata map[string]string
}

// Event is a verified webhook notification.
type Event struct {
	// Type is the provider event type.
	Type string
	// SessionID is the checkout session the event refers to, when applicable.
	SessionID string
	// PaymentIntentID is the payment confirmation identifier, when present.
	PaymentIntentID string
	// Metadata carries back the correlation identifiers.
	Metadata map[string]string
}

// Gateway is the contract over the external checkout provider.
type Gateway interface {
	// CreateSession creates a hosted checkout session and returns its
	// identifier and redirect URL.
	CreateSession(ctx context.Context, params CheckoutParams) (*Session, error)

	// RetrieveSession fetches the current state of a session.
	RetrieveSession(ctx context.Context, sessionID string) (*SessionStatus, error)

	// VerifyWebhook authenticates a raw webhook payload against the signing
	// secret and parses it. Returns ErrInvalidSignature on verification
	// failure.
	VerifyWebhook(payload []byte, signatureHeader string) (*Event, error)
}
