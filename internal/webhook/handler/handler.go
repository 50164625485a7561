// Package handler provides the HTTP handler for provider webhook delivery.
package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	donationService "github.com/cavalryfc/registration-api/internal/donation/service"
	"github.com/cavalryfc/registration-api/internal/payment"
	regService "github.com/cavalryfc/registration-api/internal/registration/service"
)

// SignatureHeader carries the provider's payload signature.
const SignatureHeader = "Stripe-Signature"

// maxPayloadBytes bounds a webhook delivery body.
const maxPayloadBytes = 1 << 20

// Handler verifies incoming webhook deliveries and applies the resulting
// state transitions. It is the push-based twin of the verify endpoints: both
// converge on the same idempotent paid transition, so duplicate or racing
// notifications are harmless.
type Handler struct {
	gateway   payment.Gateway
	regs      regService.Service
	donations donationService.Service
	logger    *zap.SugaredLogger
}

// New creates a new webhook handler instance.
func New(gateway payment.Gateway, regs regService.Service, donations donationService.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{gateway: gateway, regs: regs, donations: donations, logger: logger}
}

// Handle handles POST /api/webhooks/stripe.
//
// Signature verification happens before anything else touches the payload; a
// failure is a 400 with no state change. Unrecognized event types and events
// with no known correlation id are acknowledged with 200 so the provider
// stops retrying them.
func (h *Handler) Handle(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPayloadBytes))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "failed to read request body", http.StatusBadRequest)
		return
	}

	event, err := h.gateway.VerifyWebhook(payload, c.GetHeader(SignatureHeader))
	if err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			h.logger.Warnw("webhook signature verification failed", "error", err)
			errorResponse(c, "INVALID_SIGNATURE", "webhook signature verification failed", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error parsing webhook payload", "error", err)
		errorResponse(c, "INVALID_REQUEST", "malformed webhook payload", http.StatusBadRequest)
		return
	}

	if event.Type != payment.EventCheckoutCompleted {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	ctx := c.Request.Context()

	if id, ok := metadataID(event.Metadata, regService.MetadataKey); ok {
		if err := h.regs.ConfirmPaid(ctx, id, event.PaymentIntentID); err != nil {
			h.logger.Errorw("error confirming registration payment",
				"registration_id", id, "session_id", event.SessionID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if id, ok := metadataID(event.Metadata, donationService.MetadataKey); ok {
		if err := h.donations.ConfirmPaid(ctx, id, event.PaymentIntentID); err != nil {
			h.logger.Errorw("error confirming donation payment",
				"donation_id", id, "session_id", event.SessionID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	// A completed session this application did not create. Acknowledge it.
	h.logger.Warnw("webhook session carries no known correlation id", "session_id", event.SessionID)
	c.JSON(http.StatusOK, gin.H{"received": true})
}

// metadataID extracts a record id stored under key in session metadata.
func metadataID(metadata map[string]string, key string) (uint, bool) {
	raw, ok := metadata[key]
	if !ok || raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
