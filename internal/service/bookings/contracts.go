package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string, cancelledAt time.Time) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// LifecycleEvaluator вычисление статуса и окон бронирования по времени
type LifecycleEvaluator interface {
	RealTimeStatus(b *domain.Booking, now time.Time) domain.BookingStatus
	IsUpcomingAndNotExpired(b *domain.Booking, now time.Time) bool
	IsCancellationAllowed(b *domain.Booking, now time.Time) bool
	IsCredentialAvailable(b *domain.Booking, now time.Time) bool
	CredentialStatus(b *domain.Booking, now time.Time) string
	DateLabel(b *domain.Booking, now time.Time) string
}

// Metrics интерфейс метрик
type Metrics interface {
	BookingCancelled(sport string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
