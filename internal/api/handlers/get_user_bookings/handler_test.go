package get_user_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/m04kA/SMC-SportsBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SportsBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SportsBooking/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*models.BookingListResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc BookingService, url, userID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)
	api.HandleFunc("/users/{userId}/bookings", NewHandler(svc, logger.Nop{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set(middleware.UserIDHeader, userID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := new(mockService)
	svc.On("GetUserBookings", mock.Anything, &models.GetUserBookingsRequest{UserID: 4, Scope: models.ScopeActive}).
		Return(&models.BookingListResponse{Bookings: []models.BookingResponse{{ID: "BK-00000001"}, {ID: "BK-00000002"}}}, nil)

	rec := serve(svc, "/api/v1/users/4/bookings?scope=active", "4")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body, 2)
	svc.AssertExpectations(t)
}

func TestHandler_Handle_Errors(t *testing.T) {
	svc := new(mockService)

	assert.Equal(t, http.StatusForbidden, serve(svc, "/api/v1/users/4/bookings", "5").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/users/me/bookings", "4").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/users/4/bookings?scope=past", "4").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(svc, "/api/v1/users/4/bookings", "").Code)

	svc.AssertNotCalled(t, "GetUserBookings", mock.Anything, mock.Anything)
}
