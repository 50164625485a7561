package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/cavalryfc/registration-api/internal/content/repository"
)

// mockRepository is a mock implementation of repository.Repository for unit tests.
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *mockRepository) Put(ctx context.Context, key string, content json.RawMessage) error {
	args := m.Called(ctx, key, content)
	return args.Error(0)
}

var _ repository.Repository = (*mockRepository)(nil)

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/content/:key", h.Get)
	r.POST("/api/content/:key", h.Put)
	return r
}

func TestHandler_Get(t *testing.T) {
	t.Run("returns stored blob", func(t *testing.T) {
		mockRepo := new(mockRepository)
		router := setupRouter(New(mockRepo, zap.NewNop().Sugar()))

		mockRepo.On("Get", mock.Anything, "landing").
			Return(json.RawMessage(`{"heroTitle":"Fall Season"}`), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/content/landing", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"heroTitle":"Fall Season"}`, w.Body.String())
	})

	t.Run("missing key returns JSON null", func(t *testing.T) {
		mockRepo := new(mockRepository)
		router := setupRouter(New(mockRepo, zap.NewNop().Sugar()))

		mockRepo.On("Get", mock.Anything, "landing").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/content/landing", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", w.Body.String())
	})
}

func TestHandler_Put(t *testing.T) {
	t.Run("stores the body wholesale", func(t *testing.T) {
		mockRepo := new(mockRepository)
		router := setupRouter(New(mockRepo, zap.NewNop().Sugar()))

		body := []byte(`{"heroTitle":"Spring Season"}`)
		mockRepo.On("Put", mock.Anything, "landing", json.RawMessage(body)).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/content/landing", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		mockRepo := new(mockRepository)
		router := setupRouter(New(mockRepo, zap.NewNop().Sugar()))

		req := httptest.NewRequest(http.MethodPost, "/api/content/landing", bytes.NewReader([]byte(`{broken`)))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockRepo.AssertNotCalled(t, "Put")
	})
}
