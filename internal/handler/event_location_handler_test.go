package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-booking-api/internal/handler"
	"event-booking-api/internal/model"
	"event-booking-api/internal/service/mocks"
	apperrors "event-booking-api/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupEventLocationTestRouter(mockService *mocks.EventLocationServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewEventLocationHandler(mockService).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestEventLocationHandler_IsAvailable(t *testing.T) {
	t.Run("Available", func(t *testing.T) {
		mockService := mocks.NewEventLocationServiceMock()
		router := setupEventLocationTestRouter(mockService)

		el := &model.EventLocation{
			ID:    5,
			Name:  "VIP",
			Price: 150,
			Event: &model.Event{ID: 1, Name: "Concierto"},
			Location: &model.Location{
				ID:   2,
				Name: "Estadio",
			},
		}
		mockService.On("IsAvailable", mock.Anything, 5).Return(el, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/event-locations/5/available", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body model.EventLocation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotNil(t, body.Event)
		require.NotNil(t, body.Location)
		assert.Equal(t, "Concierto", body.Event.Name)
		assert.Equal(t, "Estadio", body.Location.Name)
		mockService.AssertExpectations(t)
	})

	t.Run("Unavailable maps to conflict", func(t *testing.T) {
		mockService := mocks.NewEventLocationServiceMock()
		router := setupEventLocationTestRouter(mockService)

		mockService.On("IsAvailable", mock.Anything, 5).
			Return(nil, apperrors.ErrEventLocationUnavailable).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/event-locations/5/available", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Unknown id maps to not found", func(t *testing.T) {
		mockService := mocks.NewEventLocationServiceMock()
		router := setupEventLocationTestRouter(mockService)

		mockService.On("IsAvailable", mock.Anything, 99).
			Return(nil, apperrors.ErrEventLocationNotFound).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/event-locations/99/available", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestEventLocationHandler_Create(t *testing.T) {
	validRequest := handler.CreateEventLocationRequest{
		Name:       "VIP",
		Price:      150,
		EventID:    1,
		LocationID: 2,
	}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewEventLocationServiceMock()
		router := setupEventLocationTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).
			Return(&model.EventLocation{ID: 3, Name: "VIP"}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/event-locations", validRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - parent event missing", func(t *testing.T) {
		mockService := mocks.NewEventLocationServiceMock()
		router := setupEventLocationTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrEventNotFound).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/event-locations", validRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - negative price rejected by binding", func(t *testing.T) {
		mockService := mocks.NewEventLocationServiceMock()
		router := setupEventLocationTestRouter(mockService)

		bad := validRequest
		bad.Price = -1
		req := createJSONHTTPRequest("POST", "/api/v1/event-locations", bad)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestEventLocationHandler_NestedListings(t *testing.T) {
	t.Run("By event", func(t *testing.T) {
		mockService := mocks.NewEventLocationServiceMock()
		router := setupEventLocationTestRouter(mockService)

		eventLocations := []*model.EventLocation{{ID: 3, EventID: 1}, {ID: 4, EventID: 1}}
		mockService.On("GetByEvent", mock.Anything, 1).Return(eventLocations, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/events/1/event-locations", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body []*model.EventLocation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("Active by event", func(t *testing.T) {
		mockService := mocks.NewEventLocationServiceMock()
		router := setupEventLocationTestRouter(mockService)

		mockService.On("GetActiveByEvent", mock.Anything, 1).
			Return([]*model.EventLocation{{ID: 3}}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/events/1/event-locations/active", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("By location", func(t *testing.T) {
		mockService := mocks.NewEventLocationServiceMock()
		router := setupEventLocationTestRouter(mockService)

		mockService.On("GetByLocation", mock.Anything, 2).
			Return([]*model.EventLocation{{ID: 3, LocationID: 2}}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/locations/2/event-locations", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestEventLocationHandler_Update(t *testing.T) {
	t.Run("Success - price change", func(t *testing.T) {
		mockService := mocks.NewEventLocationServiceMock()
		router := setupEventLocationTestRouter(mockService)

		mockService.On("Update", mock.Anything, 3, mock.Anything).
			Return(&model.EventLocation{ID: 3, Price: 200}, nil).Once()

		req := createJSONHTTPRequest("PUT", "/api/v1/event-locations/3", map[string]interface{}{"price": 200})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - empty patch", func(t *testing.T) {
		mockService := mocks.NewEventLocationServiceMock()
		router := setupEventLocationTestRouter(mockService)

		req := createJSONHTTPRequest("PUT", "/api/v1/event-locations/3", map[string]interface{}{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Update")
	})
}

func TestEventLocationHandler_Toggles(t *testing.T) {
	t.Run("Deactivate", func(t *testing.T) {
		mockService := mocks.NewEventLocationServiceMock()
		router := setupEventLocationTestRouter(mockService)

		mockService.On("Deactivate", mock.Anything, 3).Return(nil).Once()

		req := createJSONHTTPRequest("PUT", "/api/v1/event-locations/3/deactivate", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Restore not found", func(t *testing.T) {
		mockService := mocks.NewEventLocationServiceMock()
		router := setupEventLocationTestRouter(mockService)

		mockService.On("Restore", mock.Anything, 99).
			Return(apperrors.ErrEventLocationNotFound).Once()

		req := createJSONHTTPRequest("PUT", "/api/v1/event-locations/99/restore", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}
