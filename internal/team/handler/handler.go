// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/cavalryfc/registration-api/internal/team/model"
	"github.com/cavalryfc/registration-api/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// parseTeamID parses the :id path parameter.
func parseTeamID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid team id", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

// ListTeams handles GET /api/teams.
func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.service.ListTeams(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /api/teams/:id.
func (h *Handler) GetTeam(c *gin.Context) {
	id, ok := parseTeamID(c)
	if !ok {
		return
	}

	team, err := h.service.GetTeam(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting team", "team_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, team)
}

// CreateTeam handles POST /api/teams (admin).
func (h *Handler) CreateTeam(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrInvalidTeamName) ||
			errors.Is(err, teamModel.ErrInvalidPrice) ||
			errors.Is(err, teamModel.ErrInvalidCapacity) {
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating team", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// UpdateTeam handles PATCH /api/teams/:id (admin).
func (h *Handler) UpdateTeam(c *gin.Context) {
	id, ok := parseTeamID(c)
	if !ok {
		return
	}

	var req teamModel.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.service.UpdateTeam(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		if errors.Is(err, teamModel.ErrInvalidTeamName) ||
			errors.Is(err, teamModel.ErrInvalidPrice) ||
			errors.Is(err, teamModel.ErrInvalidCapacity) ||
			errors.Is(err, teamModel.ErrNoFieldsToUpdate) {
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error updating team", "team_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, team)
}
