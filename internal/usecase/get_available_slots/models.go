package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	UserID     int64     // ID пользователя (только для логирования, 0 - аноним)
	FacilityID string    // ID объекта
	CourtIndex int       // Номер корта, с 1
	Date       time.Time // Дата (время игнорируется)
}

// Response модель ответа со списком слотов
type Response struct {
	FacilityID   string
	FacilityName string
	Sport        string
	Location     string
	CourtIndex   int
	Date         time.Time
	Capacity     int
	Slots        []domain.TimeSlot
}
