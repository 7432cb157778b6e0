package get_available_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/m04kA/SMC-SportsBooking/internal/infra/storage/catalog"
	getAvailableSlots "github.com/m04kA/SMC-SportsBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SportsBooking/pkg/logger"
	"github.com/m04kA/SMC-SportsBooking/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func setupRouter() *mux.Router {
	repo := catalog.NewRepository()
	uc := getAvailableSlots.NewUseCase(repo, getAvailableSlots.NewGenerator(repo, nil), metrics.Nop{}, 59, logger.Nop{}).
		WithTimeProvider(fixedTime{now: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/facilities/{facilityId}/slots", NewHandler(uc, logger.Nop{}).Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_Handle(t *testing.T) {
	router := setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/facilities/outdoor-5/slots?date=2026-03-10&court=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Tennis Court", body.FacilityName)
	assert.Equal(t, 2, body.Court)
	require.Len(t, body.Slots, 9)

	first := body.Slots[0]
	assert.Equal(t, "6:00 AM - 7:00 AM", first.Time)
	assert.Equal(t, "06:00", first.StartTime)
	assert.Equal(t, 60, first.DurationMinutes)
	assert.Equal(t, slotStateExpired, first.State)

	last := body.Slots[len(body.Slots)-1]
	assert.NotEqual(t, slotStateExpired, last.State)
	assert.Equal(t, "outdoor-5-c2-20260310-9", last.ID)
}

func TestHandler_Handle_DefaultCourt(t *testing.T) {
	router := setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/facilities/indoor-4/slots?date=2026-03-11", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 1, body.Court)
	assert.Len(t, body.Slots, 6)
}

func TestHandler_Handle_Errors(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{name: "missing date", url: "/api/v1/facilities/indoor-1/slots", status: http.StatusBadRequest},
		{name: "bad date", url: "/api/v1/facilities/indoor-1/slots?date=10.03.2026", status: http.StatusBadRequest},
		{name: "bad court", url: "/api/v1/facilities/indoor-1/slots?date=2026-03-10&court=first", status: http.StatusBadRequest},
		{name: "unknown facility", url: "/api/v1/facilities/indoor-42/slots?date=2026-03-10", status: http.StatusNotFound},
		{name: "court out of range", url: "/api/v1/facilities/indoor-1/slots?date=2026-03-10&court=9", status: http.StatusNotFound},
		{name: "past date", url: "/api/v1/facilities/indoor-1/slots?date=2026-03-09", status: http.StatusBadRequest},
		{name: "beyond horizon", url: "/api/v1/facilities/indoor-1/slots?date=2026-06-01", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
