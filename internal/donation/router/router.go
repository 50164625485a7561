// Package router provides donation module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cavalryfc/registration-api/internal/donation/handler"
	"github.com/cavalryfc/registration-api/internal/donation/repository"
	"github.com/cavalryfc/registration-api/internal/donation/service"
	"github.com/cavalryfc/registration-api/internal/payment"
)

// RegisterRoutes registers donation module routes and returns the service
// so the webhook module can share the same paid-transition path.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	gateway payment.Gateway,
	frontendURL string,
	logger *zap.SugaredLogger,
	adminAuth gin.HandlerFunc,
) service.Service {
	repo := repository.New(db)
	svc := service.New(repo, gateway, frontendURL, logger)
	h := handler.New(svc, logger)

	r.POST("/api/donations/checkout", h.Checkout)
	r.POST("/api/donations/verify", h.Verify)
	r.GET("/api/donations", adminAuth, h.List)

	return svc
}
