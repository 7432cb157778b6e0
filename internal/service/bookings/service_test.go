package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SportsBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SportsBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SportsBooking/internal/service/lifecycle"
	"github.com/m04kA/SMC-SportsBooking/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) BookingCancelled(sport string) { m.Called(sport) }

var testNow = time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

type fixture struct {
	svc     *Service
	repo    *bookingRepo.MemoryRepository
	metrics *mockMetrics

	later     *domain.Booking // сегодня 14:00, можно отменить
	soon      *domain.Booking // сегодня 10:30, окно отмены закрыто
	finished  *domain.Booking // вчера, хранится как Upcoming
	cancelled *domain.Booking
	foreign   *domain.Booking // бронирование другого пользователя
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	repo := bookingRepo.NewMemoryRepository()
	create := func(userID int64, date, timeRange string) *domain.Booking {
		b, err := repo.Create(ctx, &domain.Booking{
			UserID:           userID,
			FacilityID:       "indoor-1",
			CourtIndex:       1,
			FacilityName:     "Badminton Court",
			Sport:            "Badminton",
			Location:         "K block",
			Date:             date,
			Time:             timeRange,
			ParticipantCount: 2,
			Participants:     domain.ParticipantsLabel(2),
			CreatedAt:        testNow.Add(-time.Hour),
		})
		require.NoError(t, err)
		return b
	}

	f := &fixture{repo: repo, metrics: new(mockMetrics)}
	f.finished = create(1, "Mar 09, 2026", "6:00 PM - 6:45 PM")
	f.cancelled = create(1, "Mar 12, 2026", "6:00 PM - 6:45 PM")
	f.soon = create(1, "Mar 10, 2026", "10:30 AM - 11:15 AM")
	f.later = create(1, "Mar 10, 2026", "2:00 PM - 2:45 PM")
	f.foreign = create(2, "Mar 10, 2026", "2:00 PM - 2:45 PM")

	cancelled, err := repo.Cancel(ctx, f.cancelled.ID, testNow.Add(-30*time.Minute))
	require.NoError(t, err)
	f.cancelled = cancelled

	evaluator := lifecycle.NewEvaluator(lifecycle.DefaultConfig(), logger.Nop{})
	f.svc = NewService(repo, evaluator, f.metrics, "https://sports.example.com", logger.Nop{}).
		WithTimeProvider(fixedTime{now: testNow})
	return f
}

func TestGetByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.GetByID(ctx, f.later.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Upcoming", resp.Status)
	assert.True(t, resp.CanCancel)
	assert.False(t, resp.CredentialAvailable)
	assert.Equal(t, "Mar 10, 2026", resp.Date)
	assert.Equal(t, "Today", resp.DateLabel)

	resp, err = f.svc.GetByID(ctx, f.finished.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Upcoming", resp.StoredStatus)
	assert.Equal(t, "Completed", resp.Status)
	assert.False(t, resp.CanCancel)
	assert.Equal(t, "Mar 09, 2026", resp.DateLabel)

	resp, err = f.svc.GetByID(ctx, f.cancelled.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", resp.Status)
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, "2026-03-10T09:30:00Z", *resp.CancelledAt)

	_, err = f.svc.GetByID(ctx, f.foreign.ID, 1)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.GetByID(ctx, "BK-FFFFFFFF", 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.svc.GetByID(ctx, "", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	all, err := f.svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: 1, Scope: models.ScopeAll})
	require.NoError(t, err)
	require.Len(t, all.Bookings, 4)
	// новые первыми
	assert.Equal(t, f.later.ID, all.Bookings[0].ID)
	assert.Equal(t, f.finished.ID, all.Bookings[3].ID)

	active, err := f.svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: 1, Scope: models.ScopeActive})
	require.NoError(t, err)
	ids := make([]string, 0, len(active.Bookings))
	for _, b := range active.Bookings {
		ids = append(ids, b.ID)
		assert.Equal(t, "Upcoming", b.Status)
	}
	assert.Equal(t, []string{f.later.ID, f.soon.ID}, ids)

	empty, err := f.svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: 99, Scope: models.ScopeAll})
	require.NoError(t, err)
	assert.NotNil(t, empty.Bookings)
	assert.Empty(t, empty.Bookings)

	_, err = f.svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{Scope: models.ScopeAll})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.metrics.On("BookingCancelled", "Badminton").Once()

	resp, err := f.svc.Cancel(ctx, f.later.ID, &models.CancelBookingRequest{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", resp.Status)
	assert.False(t, resp.CanCancel)

	stored, err := f.repo.GetByID(ctx, f.later.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	require.NotNil(t, stored.CancelledAt)
	assert.Equal(t, testNow, *stored.CancelledAt)

	f.metrics.AssertExpectations(t)
}

func TestCancel_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		id     string
		userID int64
		err    error
	}{
		{name: "not found", id: "BK-FFFFFFFF", userID: 1, err: ErrBookingNotFound},
		{name: "other user", id: f.foreign.ID, userID: 1, err: ErrAccessDenied},
		{name: "already cancelled", id: f.cancelled.ID, userID: 1, err: ErrCannotCancel},
		{name: "already completed", id: f.finished.ID, userID: 1, err: ErrCannotCancel},
		{name: "less than an hour before start", id: f.soon.ID, userID: 1, err: ErrCancellationWindowClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Cancel(ctx, tt.id, &models.CancelBookingRequest{UserID: tt.userID})
			assert.ErrorIs(t, err, tt.err)
		})
	}

	f.metrics.AssertNotCalled(t, "BookingCancelled", mock.Anything)
}

func TestGetCredential(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.GetCredential(ctx, f.soon.ID, 1)
	require.NoError(t, err)
	assert.True(t, resp.Displayable)
	assert.Equal(t, "Available now", resp.StatusText)
	assert.Equal(t, "https://sports.example.com/join/"+f.soon.ID, resp.ShareURL)

	resp, err = f.svc.GetCredential(ctx, f.later.ID, 1)
	require.NoError(t, err)
	assert.False(t, resp.Displayable)
	assert.Equal(t, "Available in 3h 0m", resp.StatusText)

	resp, err = f.svc.GetCredential(ctx, f.finished.ID, 1)
	require.NoError(t, err)
	assert.False(t, resp.Displayable)
	assert.Equal(t, "QR Code expired", resp.StatusText)

	_, err = f.svc.GetCredential(ctx, f.foreign.ID, 1)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestParseScope(t *testing.T) {
	scope, err := models.ParseScope("")
	require.NoError(t, err)
	assert.Equal(t, models.ScopeAll, scope)

	scope, err = models.ParseScope("Active")
	require.NoError(t, err)
	assert.Equal(t, models.ScopeActive, scope)

	_, err = models.ParseScope("past")
	assert.ErrorIs(t, err, models.ErrInvalidScope)
}

func TestGetByShareToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Владелец не проверяется
	shared, err := f.svc.GetByShareToken(ctx, f.foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, f.foreign.ID, shared.ID)
	assert.Equal(t, "Badminton Court", shared.FacilityName)
	assert.Equal(t, "Today", shared.DateLabel)
	assert.Equal(t, "Upcoming", shared.Status)

	shared, err = f.svc.GetByShareToken(ctx, f.cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", shared.Status)

	_, err = f.svc.GetByShareToken(ctx, "BK-FFFFFFFF")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.svc.GetByShareToken(ctx, "join/BK-1")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRemove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Remove(ctx, f.finished.ID, 1))
	require.NoError(t, f.svc.Remove(ctx, f.cancelled.ID, 1))

	all, err := f.svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: 1, Scope: models.ScopeAll})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	tests := []struct {
		name   string
		id     string
		userID int64
		want   error
	}{
		{name: "upcoming", id: f.later.ID, userID: 1, want: ErrCannotRemove},
		{name: "foreign", id: f.foreign.ID, userID: 1, want: ErrAccessDenied},
		{name: "already removed", id: f.finished.ID, userID: 1, want: ErrBookingNotFound},
		{name: "no user", id: f.later.ID, userID: 0, want: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, f.svc.Remove(ctx, tt.id, tt.userID), tt.want)
		})
	}
}
