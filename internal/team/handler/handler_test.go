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
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	teamModel "github.com/cavalryfc/registration-api/internal/team/model"
	"github.com/cavalryfc/registration-api/internal/team/service"
)

// mockService is a mock implementation of service.Service for unit tests.
type mockService struct {
	mock.Mock
}

func (m *mockService) ListTeams(ctx context.Context) ([]teamModel.TeamWithCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]teamModel.TeamWithCount), args.Error(1)
}

func (m *mockService) GetTeam(ctx context.Context, id uint) (*teamModel.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.Team), args.Error(1)
}

func (m *mockService) CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.Team, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.Team), args.Error(1)
}

func (m *mockService) UpdateTeam(ctx context.Context, id uint, req *teamModel.UpdateTeamRequest) (*teamModel.Team, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.Team), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHandler_ListTeams(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/api/teams", handler.ListTeams)

		mockSvc.On("ListTeams", mock.Anything).Return([]teamModel.TeamWithCount{
			{
				Team:              teamModel.Team{ID: 1, Name: "U10 Red", Capacity: 20},
				RegistrationCount: 5,
				SpotsLeft:         15,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []teamModel.TeamWithCount
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "U10 Red", resp[0].Name)
		assert.Equal(t, 5, resp[0].RegistrationCount)
		assert.Equal(t, 15, resp[0].SpotsLeft)
	})
}

func TestHandler_GetTeam(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/api/teams/:id", handler.GetTeam)

		mockSvc.On("GetTeam", mock.Anything, uint(1)).Return(&teamModel.Team{ID: 1, Name: "U10 Red"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/teams/1", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/api/teams/:id", handler.GetTeam)

		req := httptest.NewRequest(http.MethodGet, "/api/teams/abc", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/api/teams/:id", handler.GetTeam)

		mockSvc.On("GetTeam", mock.Anything, uint(999)).Return(nil, teamModel.ErrTeamNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/teams/999", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})
}

func TestHandler_CreateTeam(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/api/teams", handler.CreateTeam)

		mockSvc.On("CreateTeam", mock.Anything, mock.AnythingOfType("*model.CreateTeamRequest")).
			Return(&teamModel.Team{ID: 1, Name: "U10 Red", PriceCents: 16000, Capacity: 20, Open: true}, nil)

		body, _ := json.Marshal(map[string]interface{}{"name": "U10 Red"})
		req := httptest.NewRequest(http.MethodPost, "/api/teams", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp teamModel.Team
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "U10 Red", resp.Name)
		assert.Equal(t, 16000, resp.PriceCents)
	})

	t.Run("missing name", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/api/teams", handler.CreateTeam)

		req := httptest.NewRequest(http.MethodPost, "/api/teams", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_UpdateTeam(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.PATCH("/api/teams/:id", handler.UpdateTeam)

		mockSvc.On("UpdateTeam", mock.Anything, uint(1), mock.AnythingOfType("*model.UpdateTeamRequest")).
			Return(&teamModel.Team{ID: 1, Name: "U10 Red", Open: false}, nil)

		body, _ := json.Marshal(map[string]interface{}{"open": false})
		req := httptest.NewRequest(http.MethodPatch, "/api/teams/1", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no fields to update", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.PATCH("/api/teams/:id", handler.UpdateTeam)

		mockSvc.On("UpdateTeam", mock.Anything, uint(1), mock.AnythingOfType("*model.UpdateTeamRequest")).
			Return(nil, teamModel.ErrNoFieldsToUpdate)

		req := httptest.NewRequest(http.MethodPatch, "/api/teams/1", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
