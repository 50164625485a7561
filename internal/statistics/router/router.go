// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cavalryfc/registration-api/internal/statistics/handler"
	"github.com/cavalryfc/registration-api/internal/statistics/repository"
	"github.com/cavalryfc/registration-api/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, adminAuth gin.HandlerFunc) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/api/statistics", adminAuth, h.GetStatistics)
}
