package catalog

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном фильтре
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
