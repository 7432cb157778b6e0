package check_eligibility

import (
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SportsBooking/internal/usecase/create_booking"
)

// EligibilityRequest HTTP request model
type EligibilityRequest struct {
	FacilityID       string `json:"facilityId"`
	Court            int    `json:"court"`
	Date             string `json:"date"` // "2026-03-10"
	SlotID           string `json:"slotId"`
	ParticipantCount int    `json:"participantCount"`
}

// EligibilityResponse HTTP response model
type EligibilityResponse struct {
	Allowed        bool   `json:"allowed"`
	Reason         string `json:"reason,omitempty"`
	Code           string `json:"code,omitempty"`
	SlotID         string `json:"slotId"`
	Time           string `json:"time"`
	AvailableSpots int    `json:"availableSpots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EligibilityRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:           userID,
		FacilityID:       r.FacilityID,
		CourtIndex:       r.Court,
		Date:             date,
		SlotID:           r.SlotID,
		ParticipantCount: r.ParticipantCount,
	}, nil
}

// FromUseCaseResponse конвертирует решение правил в HTTP response
func FromUseCaseResponse(resp *createBooking.EligibilityResponse) *EligibilityResponse {
	return &EligibilityResponse{
		Allowed:        resp.Decision.Allowed,
		Reason:         resp.Decision.Reason,
		Code:           string(resp.Decision.Code),
		SlotID:         resp.Slot.ID,
		Time:           resp.Slot.TimeRange,
		AvailableSpots: resp.Slot.Available,
	}
}
