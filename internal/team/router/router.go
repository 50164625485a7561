// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cavalryfc/registration-api/internal/team/handler"
	"github.com/cavalryfc/registration-api/internal/team/repository"
	"github.com/cavalryfc/registration-api/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, adminAuth gin.HandlerFunc) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/api/teams", h.ListTeams)
	r.GET("/api/teams/:id", h.GetTeam)
	r.POST("/api/teams", adminAuth, h.CreateTeam)
	r.PATCH("/api/teams/:id", adminAuth, h.UpdateTeam)
}
