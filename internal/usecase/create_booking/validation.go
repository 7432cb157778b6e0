package create_booking

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.FacilityID) == "" {
		return fmt.Errorf("%w: facilityID is required", ErrInvalidInput)
	}

	if req.CourtIndex <= 0 {
		return fmt.Errorf("%w: court must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.SlotID) == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}

	// Для видов спорта без сбора участников количество может не передаваться
	if req.ParticipantCount < 0 {
		return fmt.Errorf("%w: participantCount must not be negative", ErrInvalidInput)
	}

	for _, email := range req.ConfirmationEmails {
		if !strings.Contains(email, "@") {
			return fmt.Errorf("%w: invalid email %q", ErrInvalidInput, email)
		}
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и не дальше горизонта бронирования
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, now.Location())

	if requestDateOnly.Before(today) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	if requestDateOnly.After(today.AddDate(0, 0, advanceBookingDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}
