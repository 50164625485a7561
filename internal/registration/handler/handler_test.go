package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	regModel "github.com/cavalryfc/registration-api/internal/registration/model"
	"github.com/cavalryfc/registration-api/internal/registration/service"
	teamModel "github.com/cavalryfc/registration-api/internal/team/model"
)

// mockService is a mock implementation of service.Service for unit tests.
type mockService struct {
	mock.Mock
}

func (m *mockService) Checkout(ctx context.Context, req *regModel.IntakeRequest) (*regModel.CheckoutResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*regModel.CheckoutResponse), args.Error(1)
}

func (m *mockService) Waitlist(ctx context.Context, req *regModel.IntakeRequest) (*regModel.Registration, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*regModel.Registration), args.Error(1)
}

func (m *mockService) Verify(ctx context.Context, sessionID string) (*regModel.VerifyResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*regModel.VerifyResult), args.Error(1)
}

func (m *mockService) ConfirmPaid(ctx context.Context, registrationID uint, paymentIntentID string) error {
	args := m.Called(ctx, registrationID, paymentIntentID)
	return args.Error(0)
}

func (m *mockService) List(ctx context.Context, statusFilter string) ([]regModel.AdminRegistration, error) {
	args := m.Called(ctx, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]regModel.AdminRegistration), args.Error(1)
}

func (m *mockService) WriteCSV(ctx context.Context, w io.Writer, statusFilter string) error {
	args := m.Called(ctx, w, statusFilter)
	return args.Error(0)
}

func (m *mockService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ service.Service = (*mockService)(nil)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func validIntakeBody() []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"teamId":                  1,
		"playerFirstName":         "Pat",
		"playerLastName":          "Player",
		"dateOfBirth":             "2014-03-02",
		"guardian1FirstName":      "Gail",
		"guardian1LastName":       "Guardian",
		"guardian1Email":          "gail@example.com",
		"guardian1Phone":          "555-0100",
		"street1":                 "1 Main St",
		"city":                    "Springfield",
		"state":                   "IL",
		"zip":                     "62701",
		"waiverAccepted":          true,
		"photoReleaseAccepted":    true,
		"ageVerificationAccepted": true,
		"codeOfConductAccepted":   true,
	})
	return body
}

func TestHandler_Checkout(t *testing.T) {
	post := func(h *Handler, body []byte) *httptest.ResponseRecorder {
		router := setupRouter()
		router.POST("/api/registrations/checkout", h.Checkout)
		req := httptest.NewRequest(http.MethodPost, "/api/registrations/checkout", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("success returns redirect url", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())

		mockSvc.On("Checkout", mock.Anything, mock.AnythingOfType("*model.IntakeRequest")).
			Return(&regModel.CheckoutResponse{URL: "https://checkout.example/cs"}, nil)

		w := post(handler, validIntakeBody())

		assert.Equal(t, http.StatusOK, w.Code)
		var resp regModel.CheckoutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "https://checkout.example/cs", resp.URL)
	})

	t.Run("missing required fields", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())

		w := post(handler, []byte(`{"teamId": 1}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Checkout")
	})

	t.Run("consent required", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())

		mockSvc.On("Checkout", mock.Anything, mock.Anything).
			Return(nil, regModel.ErrConsentRequired)

		w := post(handler, validIntakeBody())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "CONSENT_REQUIRED", resp.Error.Code)
	})

	t.Run("team full maps to conflict", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())

		mockSvc.On("Checkout", mock.Anything, mock.Anything).
			Return(nil, regModel.ErrTeamFull)

		w := post(handler, validIntakeBody())

		assert.Equal(t, http.StatusConflict, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "TEAM_FULL", resp.Error.Code)
	})

	t.Run("team closed", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())

		mockSvc.On("Checkout", mock.Anything, mock.Anything).
			Return(nil, regModel.ErrTeamClosed)

		w := post(handler, validIntakeBody())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "TEAM_CLOSED", resp.Error.Code)
	})

	t.Run("unknown team", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())

		mockSvc.On("Checkout", mock.Anything, mock.Anything).
			Return(nil, teamModel.ErrTeamNotFound)

		w := post(handler, validIntakeBody())

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("upstream failure maps to bad gateway", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())

		mockSvc.On("Checkout", mock.Anything, mock.Anything).
			Return(nil, regModel.ErrUpstreamFailure)

		w := post(handler, validIntakeBody())

		assert.Equal(t, http.StatusBadGateway, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "UPSTREAM_ERROR", resp.Error.Code)
	})
}

func TestHandler_Verify(t *testing.T) {
	post := func(h *Handler, body []byte) *httptest.ResponseRecorder {
		router := setupRouter()
		router.POST("/api/registrations/verify", h.Verify)
		req := httptest.NewRequest(http.MethodPost, "/api/registrations/verify", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())

		mockSvc.On("Verify", mock.Anything, "cs_test_123").Return(&regModel.VerifyResult{
			Status: regModel.PaymentStatusPaid,
		}, nil)

		w := post(handler, []byte(`{"sessionId":"cs_test_123"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp regModel.VerifyResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, regModel.PaymentStatusPaid, resp.Status)
	})

	t.Run("missing session id", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())

		w := post(handler, []byte(`{}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Verify")
	})

	t.Run("upstream failure", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())

		mockSvc.On("Verify", mock.Anything, "cs_down").
			Return(nil, regModel.ErrUpstreamFailure)

		w := post(handler, []byte(`{"sessionId":"cs_down"}`))

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestHandler_Auth(t *testing.T) {
	post := func(h *Handler, body []byte) *httptest.ResponseRecorder {
		router := setupRouter()
		router.POST("/api/registrations/auth", h.Auth)
		req := httptest.NewRequest(http.MethodPost, "/api/registrations/auth", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("correct password", func(t *testing.T) {
		handler := New(new(mockService), "secret", zap.NewNop().Sugar())

		w := post(handler, []byte(`{"password":"secret"}`))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		handler := New(new(mockService), "secret", zap.NewNop().Sugar())

		w := post(handler, []byte(`{"password":"nope"}`))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
	})
}

func TestHandler_List(t *testing.T) {
	t.Run("passes status filter through", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/api/registrations", handler.List)

		mockSvc.On("List", mock.Anything, "paid").Return([]regModel.AdminRegistration{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/registrations?status=paid", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid filter", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/api/registrations", handler.List)

		mockSvc.On("List", mock.Anything, "bogus").Return(nil, regModel.ErrInvalidStatusFilter)

		req := httptest.NewRequest(http.MethodGet, "/api/registrations?status=bogus", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Export(t *testing.T) {
	t.Run("sets csv headers", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/api/registrations/export", handler.Export)

		mockSvc.On("WriteCSV", mock.Anything, mock.Anything, "").Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/api/registrations/export", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "registrations-")
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())
		router := setupRouter()
		router.DELETE("/api/registrations/:id", handler.Delete)

		mockSvc.On("Delete", mock.Anything, uint(1)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/registrations/1", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())
		router := setupRouter()
		router.DELETE("/api/registrations/:id", handler.Delete)

		mockSvc.On("Delete", mock.Anything, uint(999)).Return(regModel.ErrRegistrationNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/registrations/999", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, "secret", zap.NewNop().Sugar())
		router := setupRouter()
		router.DELETE("/api/registrations/:id", handler.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/api/registrations/abc", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Delete")
	})
}
