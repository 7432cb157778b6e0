package lifecycle

import "errors"

var (
	// ErrInvalidDate возвращается, когда метку даты бронирования не удалось разобрать
	ErrInvalidDate = errors.New("lifecycle: invalid booking date")

	// ErrInvalidTime возвращается, когда время бронирования не удалось разобрать
	ErrInvalidTime = errors.New("lifecycle: invalid booking time")
)
