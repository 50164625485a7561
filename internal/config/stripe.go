package config

import "fmt"

// StripeConfig holds payment provider configuration.
type StripeConfig struct {
	// SecretKey is the Stripe API secret key.
	SecretKey string
	// WebhookSecret is the signing secret for webhook verification.
	WebhookSecret string
}

// LoadStripeConfigFromEnv loads Stripe configuration from environment variables.
func LoadStripeConfigFromEnv() StripeConfig {
	return StripeConfig{
		SecretKey:     GetEnv("STRIPE_SECRET_KEY", ""),
		WebhookSecret: GetEnv("STRIPE_WEBHOOK_SECRET", ""),
	}
}

// Validate validates Stripe configuration.
func (c StripeConfig) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	if c.WebhookSecret == "" {
		return fmt.Errorf("STRIPE_WEBHOOK_SECRET is required")
	}
	return nil
}
