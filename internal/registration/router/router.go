// Package router provides registration module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cavalryfc/registration-api/internal/payment"
	"github.com/cavalryfc/registration-api/internal/registration/handler"
	"github.com/cavalryfc/registration-api/internal/registration/repository"
	"github.com/cavalryfc/registration-api/internal/registration/service"
)

// RegisterRoutes registers registration module routes and returns the
// service so the webhook module can share the same paid-transition path.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	gateway payment.Gateway,
	frontendURL string,
	adminPassword string,
	logger *zap.SugaredLogger,
	adminAuth gin.HandlerFunc,
) service.Service {
	repo := repository.New(db)
	svc := service.New(repo, gateway, db, frontendURL, logger)
	h := handler.New(svc, adminPassword, logger)

	r.POST("/api/registrations/checkout", h.Checkout)
	r.POST("/api/registrations/waitlist", h.Waitlist)
	r.POST("/api/registrations/verify", h.Verify)
	r.POST("/api/registrations/auth", h.Auth)
	r.GET("/api/registrations", adminAuth, h.List)
	r.GET("/api/registrations/export", adminAuth, h.Export)
	r.DELETE("/api/registrations/:id", adminAuth, h.Delete)

	return svc
}
