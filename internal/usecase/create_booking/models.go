package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID             int64     // ID пользователя
	FacilityID         string    // ID объекта
	CourtIndex         int       // Номер корта, с 1
	Date               time.Time // Дата бронирования (без времени)
	SlotID             string    // ID слота из ответа get_available_slots
	ParticipantCount   int       // Количество участников
	ConfirmationEmails []string  // Адреса для подтверждения (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking          domain.Booking
	ShareURL         string
	ConfirmationSent bool
}

// EligibilityResponse результат проверки без создания бронирования
type EligibilityResponse struct {
	Decision Decision
	Slot     domain.TimeSlot
}
