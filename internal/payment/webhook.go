package payment

import (
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// webhookConstructEvent verifies the Stripe-Signature header and decodes the
// event. API version mismatches are tolerated: the fields this application
// reads are stable across the versions Stripe delivers.
func webhookConstructEvent(payload []byte, signatureHeader, secret string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(payload, signatureHeader, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}
