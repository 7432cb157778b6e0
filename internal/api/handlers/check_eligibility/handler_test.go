package check_eligibility

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m04kA/SMC-SportsBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SportsBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SportsBooking/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChecker struct {
	mock.Mock
}

func (m *mockChecker) CheckEligibility(ctx context.Context, req *createBooking.Request) (*createBooking.EligibilityResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*createBooking.EligibilityResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

const body = `{"facilityId":"indoor-1","court":1,"date":"2026-03-10","slotId":"indoor-1-c1-20260310-3","participantCount":2}`

func serve(h *Handler, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/eligibility", strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_RejectionIsOK(t *testing.T) {
	checker := new(mockChecker)
	checker.On("CheckEligibility", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.UserID == 3 && r.ParticipantCount == 2
	})).Return(&createBooking.EligibilityResponse{
		Decision: createBooking.Decision{Code: createBooking.CodeNotEnoughSpots, Reason: "Only 1 spots left in this slot, you requested 2"},
		Slot:     domain.TimeSlot{ID: "indoor-1-c1-20260310-3", TimeRange: "8:15 AM - 9:00 AM", Available: 1},
	}, nil)

	rec := serve(NewHandler(checker, logger.Nop{}), 3)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp EligibilityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Allowed)
	assert.Equal(t, "not_enough_spots", resp.Code)
	assert.Equal(t, 1, resp.AvailableSpots)
	checker.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	rec := serve(NewHandler(new(mockChecker), logger.Nop{}), 0)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	checker := new(mockChecker)
	checker.On("CheckEligibility", mock.Anything, mock.Anything).Return(nil, createBooking.ErrSlotNotFound)
	rec = serve(NewHandler(checker, logger.Nop{}), 3)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
