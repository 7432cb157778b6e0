package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SportsBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID         string   `json:"facilityId"`
	Court              int      `json:"court"`
	Date               string   `json:"date"` // "2026-03-10"
	SlotID             string   `json:"slotId"`
	ParticipantCount   int      `json:"participantCount"`
	ConfirmationEmails []string `json:"confirmationEmails,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               string `json:"id"`
	FacilityID       string `json:"facilityId"`
	Court            int    `json:"court"`
	FacilityName     string `json:"facilityName"`
	Sport            string `json:"sport"`
	Location         string `json:"location"`
	FacilitySize     int    `json:"facilitySize"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ParticipantCount int    `json:"participantCount"`
	Participants     string `json:"participants"`
	Status           string `json:"status"`
	ShareURL         string `json:"shareUrl"`
	ConfirmationSent bool   `json:"confirmationSent"`
	CreatedAt        string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:             userID,
		FacilityID:         r.FacilityID,
		CourtIndex:         r.Court,
		Date:               date,
		SlotID:             r.SlotID,
		ParticipantCount:   r.ParticipantCount,
		ConfirmationEmails: r.ConfirmationEmails,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking
	return &BookingResponse{
		ID:               b.ID,
		FacilityID:       b.FacilityID,
		Court:            b.CourtIndex,
		FacilityName:     b.FacilityName,
		Sport:            b.Sport,
		Location:         b.Location,
		FacilitySize:     b.FacilitySize,
		Date:             b.Date,
		Time:             b.Time,
		ParticipantCount: b.ParticipantCount,
		Participants:     b.Participants,
		Status:           string(b.Status),
		ShareURL:         resp.ShareURL,
		ConfirmationSent: resp.ConfirmationSent,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}
