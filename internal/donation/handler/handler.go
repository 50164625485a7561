// Package handler provides HTTP handlers for donation endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	donationModel "github.com/cavalryfc/registration-api/internal/donation/model"
	"github.com/cavalryfc/registration-api/internal/donation/service"
)

// Handler handles HTTP requests for donation endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new donation handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Checkout handles POST /api/donations/checkout.
func (h *Handler) Checkout(c *gin.Context) {
	var req donationModel.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Checkout(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, donationModel.ErrAmountBelowMinimum) {
			errorResponse(c, "INVALID_AMOUNT", err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, donationModel.ErrUpstreamFailure) {
			h.logger.Errorw("donation checkout upstream failure", "error", err)
			errorResponse(c, "UPSTREAM_ERROR", "failed to initiate donation checkout", http.StatusBadGateway)
			return
		}
		h.logger.Errorw("donation checkout error", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Verify handles POST /api/donations/verify.
func (h *Handler) Verify(c *gin.Context) {
	var req donationModel.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "sessionId is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Verify(c.Request.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, donationModel.ErrUpstreamFailure) {
			h.logger.Errorw("donation verify upstream failure", "session_id", req.SessionID, "error", err)
			errorResponse(c, "UPSTREAM_ERROR", "verification failed", http.StatusBadGateway)
			return
		}
		h.logger.Errorw("donation verify error", "session_id", req.SessionID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, result)
}

// List handles GET /api/donations (admin).
func (h *Handler) List(c *gin.Context) {
	donations, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing donations", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, donations)
}
