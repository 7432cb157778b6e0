package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("create_booking: facility not found")

	// ErrCourtNotFound возвращается, когда у объекта нет корта с таким номером
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrSlotNotFound возвращается, когда слота с таким ID нет в расписании
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrBookingRejected возвращается, когда бронирование запрещено правилами
	ErrBookingRejected = errors.New("create_booking: booking rejected")

	// ErrBusy возвращается, когда параллельное бронирование того же пользователя не завершилось вовремя
	ErrBusy = errors.New("create_booking: another booking of this user is in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// RejectionError отказ правил бронирования с причиной
type RejectionError struct {
	Decision Decision
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrBookingRejected, e.Decision.Code, e.Decision.Reason)
}

func (e *RejectionError) Unwrap() error {
	return ErrBookingRejected
}
