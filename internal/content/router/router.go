// Package router provides content module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cavalryfc/registration-api/internal/content/handler"
	"github.com/cavalryfc/registration-api/internal/content/repository"
)

// RegisterRoutes registers content module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, adminAuth gin.HandlerFunc) {
	repo := repository.New(db)
	h := handler.New(repo, logger)

	r.GET("/api/content/:key", h.Get)
	r.POST("/api/content/:key", adminAuth, h.Put)
}
