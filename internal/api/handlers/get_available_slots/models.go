package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SportsBooking/internal/usecase/get_available_slots"
)

// Состояние слота для отображения
const (
	slotStateAvailable   = "available"
	slotStatePartial     = "partial"
	slotStateUnavailable = "unavailable"
	slotStateExpired     = "expired"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date         string          `json:"date"`
	FacilityID   string          `json:"facilityId"`
	FacilityName string          `json:"facilityName"`
	Sport        string          `json:"sport"`
	Location     string          `json:"location"`
	Court        int             `json:"court"`
	Capacity     int             `json:"capacity"`
	Slots        []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	ID                string `json:"id"`
	Time              string `json:"time"`      // "6:45 AM - 7:30 AM"
	StartTime         string `json:"startTime"` // "06:45"
	EndTime           string `json:"endTime"`
	DurationMinutes   int    `json:"durationMinutes"`
	AvailableSpots    int    `json:"availableSpots"`
	TotalSpots        int    `json:"totalSpots"`
	State             string `json:"state"`
	UnavailableReason string `json:"unavailableReason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i := range resp.Slots {
		slot := &resp.Slots[i]
		slots[i] = AvailableSlot{
			ID:                slot.ID,
			Time:              slot.TimeRange,
			StartTime:         slot.Range.Start.String(),
			EndTime:           slot.Range.End.String(),
			DurationMinutes:   slot.Range.DurationMinutes(),
			AvailableSpots:    slot.Available,
			TotalSpots:        slot.Capacity,
			State:             slotState(slot),
			UnavailableReason: string(slot.UnavailableReason),
		}
	}

	return &AvailableSlotsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		FacilityID:   resp.FacilityID,
		FacilityName: resp.FacilityName,
		Sport:        resp.Sport,
		Location:     resp.Location,
		Court:        resp.CourtIndex,
		Capacity:     resp.Capacity,
		Slots:        slots,
	}
}

func slotState(slot *domain.TimeSlot) string {
	switch {
	case slot.IsExpired:
		return slotStateExpired
	case !slot.IsBookable():
		return slotStateUnavailable
	case slot.IsPartiallyAvailable():
		return slotStatePartial
	default:
		return slotStateAvailable
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
// Пустой court означает первый корт
func ToUseCaseRequest(userID int64, facilityID, dateStr, courtStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	court := 1
	if courtStr != "" {
		court, err = strconv.Atoi(courtStr)
		if err != nil {
			return nil, err
		}
	}

	return &getAvailableSlots.Request{
		UserID:     userID,
		FacilityID: facilityID,
		CourtIndex: court,
		Date:       date,
	}, nil
}
