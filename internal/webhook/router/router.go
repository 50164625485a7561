// Package router provides webhook routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	donationService "github.com/cavalryfc/registration-api/internal/donation/service"
	"github.com/cavalryfc/registration-api/internal/payment"
	regService "github.com/cavalryfc/registration-api/internal/registration/service"
	"github.com/cavalryfc/registration-api/internal/webhook/handler"
)

// RegisterRoutes registers the provider webhook endpoint.
func RegisterRoutes(r *gin.Engine, gateway payment.Gateway, regs regService.Service, donations donationService.Service, logger *zap.SugaredLogger) {
	h := handler.New(gateway, regs, donations, logger)

	r.POST("/api/webhooks/stripe", h.Handle)
}
