package get_available_slots

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден в справочнике
	ErrFacilityNotFound = errors.New("get_available_slots: facility not found")

	// ErrCourtNotFound возвращается, когда у объекта нет корта с таким номером
	ErrCourtNotFound = errors.New("get_available_slots: court not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
