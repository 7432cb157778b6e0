package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
)

// ErrInvalidScope возвращается при неизвестном значении scope
var ErrInvalidScope = errors.New("invalid bookings scope")

// Scope какие бронирования пользователя возвращать
type Scope string

const (
	ScopeActive Scope = "active" // хранимый Upcoming и еще не закончилось
	ScopeAll    Scope = "all"
)

// ParseScope разбирает scope из query-параметра, пустое значение = all
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeAll:
		return ScopeAll, nil
	case ScopeActive:
		return ScopeActive, nil
	default:
		return "", ErrInvalidScope
	}
}

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64 `json:"userId"`
	Scope  Scope `json:"scope"`
}

// Response модели

// BookingResponse бронирование вместе с вычисленным статусом
type BookingResponse struct {
	ID               string `json:"id"`
	UserID           int64  `json:"userId"`
	FacilityID       string `json:"facilityId"`
	CourtIndex       int    `json:"court"`
	FacilityName     string `json:"facilityName"`
	Sport            string `json:"sport"`
	Location         string `json:"location"`
	FacilitySize     int    `json:"facilitySize"`
	Date             string `json:"date"`
	DateLabel        string `json:"dateLabel"` // "Today", "Tomorrow" или дата
	Time             string `json:"time"`
	ParticipantCount int    `json:"participantCount"`
	Participants     string `json:"participants"`

	StoredStatus string `json:"storedStatus"`
	Status       string `json:"status"` // статус с учетом текущего времени

	CanCancel           bool `json:"canCancel"`
	CredentialAvailable bool `json:"credentialAvailable"`

	CreatedAt   time.Time `json:"createdAt"`
	CancelledAt *string   `json:"cancelledAt,omitempty"` // ISO 8601 format
}

// SharedBookingResponse бронирование, открытое по ссылке-приглашению
// Без владельца и без действий над бронированием
type SharedBookingResponse struct {
	ID           string `json:"id"`
	FacilityName string `json:"facilityName"`
	Sport        string `json:"sport"`
	Location     string `json:"location"`
	FacilitySize int    `json:"facilitySize"`
	Date         string `json:"date"`
	DateLabel    string `json:"dateLabel"`
	Time         string `json:"time"`
	Participants string `json:"participants"`
	Status       string `json:"status"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CredentialResponse данные пропуска (QR) для бронирования
type CredentialResponse struct {
	BookingID   string `json:"bookingId"`
	ShareURL    string `json:"shareUrl"`
	Displayable bool   `json:"displayable"`
	StatusText  string `json:"statusText"`
}

// Derived вычисленные по времени поля бронирования
type Derived struct {
	Status              domain.BookingStatus
	DateLabel           string
	CanCancel           bool
	CredentialAvailable bool
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, d Derived) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                  b.ID,
		UserID:              b.UserID,
		FacilityID:          b.FacilityID,
		CourtIndex:          b.CourtIndex,
		FacilityName:        b.FacilityName,
		Sport:               b.Sport,
		Location:            b.Location,
		FacilitySize:        b.FacilitySize,
		Date:                b.Date,
		DateLabel:           d.DateLabel,
		Time:                b.Time,
		ParticipantCount:    b.ParticipantCount,
		Participants:        b.Participants,
		StoredStatus:        string(b.Status),
		Status:              string(d.Status),
		CanCancel:           d.CanCancel,
		CredentialAvailable: d.CredentialAvailable,
		CreatedAt:           b.CreatedAt,
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// ToSharedBooking конвертирует domain модель в публичное представление
func ToSharedBooking(b *domain.Booking, d Derived) *SharedBookingResponse {
	if b == nil {
		return nil
	}

	return &SharedBookingResponse{
		ID:           b.ID,
		FacilityName: b.FacilityName,
		Sport:        b.Sport,
		Location:     b.Location,
		FacilitySize: b.FacilitySize,
		Date:         b.Date,
		DateLabel:    d.DateLabel,
		Time:         b.Time,
		Participants: b.Participants,
		Status:       string(d.Status),
	}
}
