package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	"github.com/m04kA/SMC-SportsBooking/internal/integrations/mailer"
	"github.com/stretchr/testify/mock"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Booking) *domain.Booking); ok {
		return fn(ctx, booking), args.Error(1)
	}
	if b, ok := args.Get(0).(*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]*domain.Booking); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendConfirmationWithGracefulDegradation(ctx context.Context, msg *mailer.Confirmation) error {
	return m.Called(ctx, msg).Error(0)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) BookingCreated(sport string) { m.Called(sport) }

func (m *mockMetrics) BookingRejected(rule string) { m.Called(rule) }

// stubGenerator отдает заранее заданные слоты по ID
type stubGenerator struct {
	slots map[string]domain.TimeSlot
}

func (s *stubGenerator) FindSlot(_ domain.Facility, _ int, _ time.Time, _ int, _ time.Time, slotID string) (*domain.TimeSlot, bool) {
	slot, ok := s.slots[slotID]
	if !ok {
		return nil, false
	}
	return &slot, true
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }
