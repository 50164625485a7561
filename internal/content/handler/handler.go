// Package handler provides HTTP handlers for site content endpoints.
package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cavalryfc/registration-api/internal/content/repository"
)

// maxContentBytes bounds an editable page-text blob.
const maxContentBytes = 1 << 20

// Handler handles HTTP requests for site content endpoints.
type Handler struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new content handler instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// Get handles GET /api/content/:key. Returns JSON null when the key is not
// set so the frontend falls back to its defaults.
func (h *Handler) Get(c *gin.Context) {
	key := c.Param("key")

	content, err := h.repo.Get(c.Request.Context(), key)
	if err != nil {
		h.logger.Errorw("error fetching content", "key", key, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	if content == nil {
		c.Data(http.StatusOK, "application/json", []byte("null"))
		return
	}

	c.Data(http.StatusOK, "application/json", content)
}

// Put handles POST /api/content/:key (admin). The body is stored wholesale
// as the new blob for the key.
func (h *Handler) Put(c *gin.Context) {
	key := c.Param("key")

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxContentBytes))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "failed to read request body", http.StatusBadRequest)
		return
	}
	if !json.Valid(body) {
		errorResponse(c, "INVALID_REQUEST", "body must be valid JSON", http.StatusBadRequest)
		return
	}

	if err := h.repo.Put(c.Request.Context(), key, body); err != nil {
		h.logger.Errorw("error updating content", "key", key, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
