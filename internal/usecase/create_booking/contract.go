package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	"github.com/m04kA/SMC-SportsBooking/internal/integrations/mailer"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс справочника объектов
type CatalogRepository interface {
	GetFacility(ctx context.Context, id string) (*domain.Facility, error)
	SportRules(sport string) domain.SportRules
}

// SlotGenerator генератор слотов, по которому проверяется выбранный слот
type SlotGenerator interface {
	FindSlot(facility domain.Facility, courtIndex int, date time.Time, capacity int, now time.Time, slotID string) (*domain.TimeSlot, bool)
}

// LifecycleEvaluator вычисление статуса бронирования по времени
type LifecycleEvaluator interface {
	IsUpcomingAndNotExpired(b *domain.Booking, now time.Time) bool
}

// Locker блокировка по ключу вокруг проверки и вставки
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Mailer клиент отправки подтверждений
type Mailer interface {
	SendConfirmationWithGracefulDegradation(ctx context.Context, msg *mailer.Confirmation) error
}

// Metrics интерфейс метрик
type Metrics interface {
	BookingCreated(sport string)
	BookingRejected(rule string)
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
