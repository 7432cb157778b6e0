package cancel_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/m04kA/SMC-SportsBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SportsBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SportsBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SportsBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SportsBooking/internal/service/lifecycle"
	"github.com/m04kA/SMC-SportsBooking/pkg/logger"
	"github.com/m04kA/SMC-SportsBooking/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func setup(t *testing.T) (*mux.Router, map[string]string) {
	t.Helper()
	ctx := context.Background()
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

	repo := bookingRepo.NewMemoryRepository()
	ids := make(map[string]string)
	for name, b := range map[string]*domain.Booking{
		"later":   {UserID: 1, Sport: "Tennis", Date: "Mar 10, 2026", Time: "4:00 PM - 5:00 PM"},
		"soon":    {UserID: 1, Sport: "Tennis", Date: "Mar 10, 2026", Time: "10:45 AM - 11:30 AM"},
		"foreign": {UserID: 2, Sport: "Tennis", Date: "Mar 10, 2026", Time: "4:00 PM - 5:00 PM"},
	} {
		created, err := repo.Create(ctx, b)
		require.NoError(t, err)
		ids[name] = created.ID
	}

	svc := bookings.NewService(repo, lifecycle.NewEvaluator(lifecycle.DefaultConfig(), logger.Nop{}), metrics.Nop{}, "", logger.Nop{}).
		WithTimeProvider(fixedTime{now: now})

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)
	api.HandleFunc("/bookings/{bookingId}/cancel", NewHandler(svc, logger.Nop{}).Handle).Methods(http.MethodPatch)
	return r, ids
}

func cancel(r *mux.Router, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id+"/cancel", nil)
	req.Header.Set(middleware.UserIDHeader, "1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	r, ids := setup(t)

	rec := cancel(r, ids["later"])
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Cancelled", body.Status)
	assert.NotNil(t, body.CancelledAt)

	// повторная отмена
	assert.Equal(t, http.StatusConflict, cancel(r, ids["later"]).Code)
}

func TestHandler_Handle_Errors(t *testing.T) {
	r, ids := setup(t)

	assert.Equal(t, http.StatusConflict, cancel(r, ids["soon"]).Code)
	assert.Equal(t, http.StatusForbidden, cancel(r, ids["foreign"]).Code)
	assert.Equal(t, http.StatusNotFound, cancel(r, "BK-FFFFFFFF").Code)
}
