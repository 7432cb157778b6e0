package delete_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/m04kA/SMC-SportsBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SportsBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SportsBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SportsBooking/internal/service/lifecycle"
	"github.com/m04kA/SMC-SportsBooking/pkg/logger"
	"github.com/m04kA/SMC-SportsBooking/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func setup(t *testing.T) (*mux.Router, *bookingRepo.MemoryRepository, map[string]string) {
	t.Helper()
	ctx := context.Background()
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

	repo := bookingRepo.NewMemoryRepository()
	ids := make(map[string]string)
	for name, b := range map[string]*domain.Booking{
		"finished": {UserID: 1, Sport: "Tennis", Date: "Mar 09, 2026", Time: "4:00 PM - 5:00 PM"},
		"upcoming": {UserID: 1, Sport: "Tennis", Date: "Mar 10, 2026", Time: "4:00 PM - 5:00 PM"},
		"foreign":  {UserID: 2, Sport: "Tennis", Date: "Mar 09, 2026", Time: "4:00 PM - 5:00 PM"},
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
	api.HandleFunc("/bookings/{bookingId}", NewHandler(svc, logger.Nop{}).Handle).Methods(http.MethodDelete)
	return r, repo, ids
}

func remove(r *mux.Router, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/"+id, nil)
	req.Header.Set(middleware.UserIDHeader, "1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	r, repo, ids := setup(t)

	rec := remove(r, ids["finished"])
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err := repo.GetByID(context.Background(), ids["finished"])
	assert.ErrorIs(t, err, bookingRepo.ErrBookingNotFound)

	// повторное удаление
	assert.Equal(t, http.StatusNotFound, remove(r, ids["finished"]).Code)
}

func TestHandler_Handle_Errors(t *testing.T) {
	r, _, ids := setup(t)

	assert.Equal(t, http.StatusConflict, remove(r, ids["upcoming"]).Code)
	assert.Equal(t, http.StatusForbidden, remove(r, ids["foreign"]).Code)
	assert.Equal(t, http.StatusNotFound, remove(r, "BK-FFFFFFFF").Code)
}
