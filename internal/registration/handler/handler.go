// Package handler provides HTTP handlers for registration endpoints.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cavalryfc/registration-api/internal/middleware"
	regModel "github.com/cavalryfc/registration-api/internal/registration/model"
	"github.com/cavalryfc/registration-api/internal/registration/service"
	teamModel "github.com/cavalryfc/registration-api/internal/team/model"
)

// Handler handles HTTP requests for registration endpoints.
type Handler struct {
	service       service.Service
	adminPassword string
	logger        *zap.SugaredLogger
}

// New creates a new registration handler instance.
func New(svc service.Service, adminPassword string, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, adminPassword: adminPassword, logger: logger}
}

// Checkout handles POST /api/registrations/checkout. On success the client
// is handed the hosted checkout redirect URL.
func (h *Handler) Checkout(c *gin.Context) {
	var req regModel.IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Checkout(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, regModel.ErrConsentRequired):
			errorResponse(c, "CONSENT_REQUIRED", err.Error(), http.StatusBadRequest)
		case errors.Is(err, teamModel.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, regModel.ErrTeamClosed):
			errorResponse(c, "TEAM_CLOSED", err.Error(), http.StatusBadRequest)
		case errors.Is(err, regModel.ErrTeamFull):
			// The client is expected to re-submit to the waitlist path.
			errorResponse(c, "TEAM_FULL", err.Error(), http.StatusConflict)
		case errors.Is(err, regModel.ErrUpstreamFailure):
			h.logger.Errorw("checkout upstream failure", "error", err)
			errorResponse(c, "UPSTREAM_ERROR", "failed to initiate checkout", http.StatusBadGateway)
		default:
			h.logger.Errorw("checkout error", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Waitlist handles POST /api/registrations/waitlist.
func (h *Handler) Waitlist(c *gin.Context) {
	var req regModel.IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	reg, err := h.service.Waitlist(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("waitlist error", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, regModel.WaitlistResponse{
		Status:       "waitlisted",
		Registration: reg,
	})
}

// Verify handles POST /api/registrations/verify, called by the frontend
// when the client returns from the hosted checkout flow.
func (h *Handler) Verify(c *gin.Context) {
	var req regModel.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "sessionId is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Verify(c.Request.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, regModel.ErrUpstreamFailure) {
			h.logger.Errorw("verify upstream failure", "session_id", req.SessionID, "error", err)
			errorResponse(c, "UPSTREAM_ERROR", "verification failed", http.StatusBadGateway)
			return
		}
		h.logger.Errorw("verify error", "session_id", req.SessionID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Auth handles POST /api/registrations/auth, the admin UI login check.
func (h *Handler) Auth(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if !middleware.SecretMatches(h.adminPassword, req.Password) {
		errorResponse(c, "UNAUTHORIZED", "invalid password", http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// List handles GET /api/registrations (admin). Supports an optional
// status=paid|unpaid|waitlist filter for export convenience.
func (h *Handler) List(c *gin.Context) {
	regs, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, regModel.ErrInvalidStatusFilter) {
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error listing registrations", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, regs)
}

// Export handles GET /api/registrations/export (admin), streaming CSV.
func (h *Handler) Export(c *gin.Context) {
	filename := fmt.Sprintf("registrations-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.service.WriteCSV(c.Request.Context(), c.Writer, c.Query("status")); err != nil {
		if errors.Is(err, regModel.ErrInvalidStatusFilter) {
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
			return
		}
		// Headers may already be out; log and abort the stream.
		h.logger.Errorw("error exporting registrations", "error", err)
		c.Abort()
	}
}

// Delete handles DELETE /api/registrations/:id (admin). Confirmation is the
// admin UI's responsibility.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid registration id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, regModel.ErrRegistrationNotFound) {
			notFoundResponse(c, "registration not found")
			return
		}
		h.logger.Errorw("error deleting registration", "registration_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
