package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
)

// CatalogRepository интерфейс справочника объектов
type CatalogRepository interface {
	GetFacility(ctx context.Context, id string) (*domain.Facility, error)
	SportRules(sport string) domain.SportRules
}

// TemplateSource источник шаблонов слотов
type TemplateSource interface {
	TemplatesFor(facilityName, location string, courtIndex int) []domain.SlotTemplate
}

// OccupancySource стратегия заполненности слота
// Возвращает количество свободных мест и причину недоступности для не истекшего слота
type OccupancySource interface {
	Occupancy(seed int64, slotIndex int, capacity int) (available int, reason domain.UnavailableReason)
}

// Metrics интерфейс метрик
type Metrics interface {
	SlotsGenerated(facilityID string, count int)
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
