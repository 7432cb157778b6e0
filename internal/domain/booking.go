package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingStatus хранимый статус бронирования
// Completed никогда не записывается сервисом, а вычисляется при чтении
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "Upcoming"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
)

// Booking бронирование спортивного объекта
type Booking struct {
	ID         string // BK-XXXXXXXX
	UserID     int64
	FacilityID string
	CourtIndex int

	// Денормализованные данные объекта
	FacilityName string
	Sport        string
	Location     string
	FacilitySize int

	Date             string // "Today", "Tomorrow" или "Jan 02, 2006"
	Time             string // "2:00 PM - 2:45 PM" или "14:00 - 14:45"
	ParticipantCount int
	Participants     string // "2 participants"
	Status           BookingStatus

	CreatedAt   time.Time
	CancelledAt *time.Time
}

// IsCancelled бронирование отменено
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsStoredUpcoming хранимый статус Upcoming (без учета текущего времени)
func (b *Booking) IsStoredUpcoming() bool {
	return b.Status == StatusUpcoming
}

// CanBeCancelled отменить можно только бронирование в статусе Upcoming
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusUpcoming
}

// ParticipantsLabel подпись вида "1 participant" / "3 participants"
func ParticipantsLabel(count int) string {
	if count == 1 {
		return "1 participant"
	}
	return fmt.Sprintf("%d participants", count)
}

// ShareURL ссылка для приглашения участников: <base>/join/<token>
func ShareURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/join/" + token
}

// IsBookingID проверяет форму идентификатора: BK- и от 6 до 8 заглавных букв или цифр
func IsBookingID(s string) bool {
	suffix, ok := strings.CutPrefix(s, BookingIDPrefix)
	if !ok || len(suffix) < 6 || len(suffix) > 8 {
		return false
	}
	for _, c := range suffix {
		if !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
