package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/cavalryfc/registration-api/internal/config"
)

// StripeGateway implements Gateway over the Stripe API.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

// NewStripeGateway creates a Stripe-backed gateway from configuration.
func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
	}
}

// CreateSession creates a hosted Stripe Checkout session.
func (g *StripeGateway) CreateSession(ctx context.Context, p CheckoutParams) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(p.ProductName),
						Description: stripe.String(p.Description),
					},
					UnitAmount: stripe.Int64(p.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata(p.CorrelationKey, p.CorrelationID)

	if p.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &Session{ID: s.ID, URL: s.URL}, nil
}

// RetrieveSession fetches a session's current payment state from Stripe.
func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (*SessionStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}

	status := &SessionStatus{
		PaymentStatus: string(s.PaymentStatus),
		Metadata:      s.Metadata,
	}
	if s.PaymentIntent != nil {
		status.PaymentIntentID = s.PaymentIntent.ID
	}

	return status, nil
}

// checkoutSessionPayload is the subset of a checkout.session webhook object
// the application consumes. In raw webhook JSON payment_intent is the intent
// id, not an expanded object.
type checkoutSessionPayload struct {
	ID            string            `json:"id"`
	PaymentIntent string            `json:"payment_intent"`
	Metadata      map[string]string `json:"metadata"`
}

// VerifyWebhook authenticates and parses a Stripe webhook payload.
func (g *StripeGateway) VerifyWebhook(payload []byte, signatureHeader string) (*Event, error) {
	event, err := ParseWebhookEvent(payload, signatureHeader, g.webhookSecret)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// ParseWebhookEvent verifies a payload signature against a signing secret and
// extracts the fields the application consumes. Split out of the gateway so
// it is testable without Stripe credentials.
func ParseWebhookEvent(payload []byte, signatureHeader, secret string) (*Event, error) {
	stripeEvent, err := webhookConstructEvent(payload, signatureHeader, secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	event := &Event{Type: string(stripeEvent.Type)}

	if event.Type == EventCheckoutCompleted {
		var session checkoutSessionPayload
		if err := json.Unmarshal(stripeEvent.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("decode checkout.session: %w", err)
		}
		event.SessionID = session.ID
		event.PaymentIntentID = session.PaymentIntent
		event.Metadata = session.Metadata
	}

	return event, nil
}
