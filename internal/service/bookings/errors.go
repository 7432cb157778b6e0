package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrCannotCancel возвращается, когда бронирование уже отменено или завершено
	ErrCannotCancel = errors.New("bookings: booking cannot be cancelled")

	// ErrCancellationWindowClosed возвращается, когда до начала остается час или меньше
	ErrCancellationWindowClosed = errors.New("bookings: cancellation is allowed only more than one hour before start")

	// ErrCannotRemove возвращается при удалении бронирования, которое еще предстоит
	ErrCannotRemove = errors.New("bookings: only cancelled or completed bookings can be removed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
