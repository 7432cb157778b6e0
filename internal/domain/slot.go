package domain

import (
	"time"

	"github.com/m04kA/SMC-SportsBooking/pkg/types"
)

// SlotTemplate статический шаблон слота: начало и конец в пределах дня
type SlotTemplate struct {
	Start types.TimeString
	End   types.TimeString
}

// Range возвращает интервал шаблона
func (t SlotTemplate) Range() types.TimeRange {
	return types.TimeRange{Start: t.Start, End: t.End}
}

// DurationMinutes длительность слота
func (t SlotTemplate) DurationMinutes() int {
	return t.End.Minutes() - t.Start.Minutes()
}

// UnavailableReason причина недоступности слота
type UnavailableReason string

const (
	ReasonNone        UnavailableReason = ""
	ReasonExpired     UnavailableReason = "expired"
	ReasonBooked      UnavailableReason = "booked"
	ReasonBlocked     UnavailableReason = "blocked"
	ReasonMaintenance UnavailableReason = "maintenance"
)

// TimeSlot вычисляемый слот на конкретную дату и корт, не хранится
type TimeSlot struct {
	ID                string
	FacilityID        string
	CourtIndex        int
	Date              time.Time
	Index             int // порядковый номер в шаблоне, с 1
	Range             types.TimeRange
	TimeRange         string // "6:45 AM - 7:30 AM"
	Capacity          int
	Available         int
	IsExpired         bool
	UnavailableReason UnavailableReason
}

// IsBookable слот можно бронировать
func (s *TimeSlot) IsBookable() bool {
	return !s.IsExpired && s.Available > 0 && s.UnavailableReason == ReasonNone
}

// IsFullyAvailable все места свободны
func (s *TimeSlot) IsFullyAvailable() bool {
	return s.UnavailableReason == ReasonNone && s.Available == s.Capacity
}

// IsPartiallyAvailable часть мест занята
func (s *TimeSlot) IsPartiallyAvailable() bool {
	return s.Available > 0 && s.Available < s.Capacity
}

// OccupancyRate процент занятости (0-100)
func (s *TimeSlot) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	occupied := s.Capacity - s.Available
	return float64(occupied) / float64(s.Capacity) * 100
}
