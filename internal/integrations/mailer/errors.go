package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidRequest возвращается, когда сервис отклонил письмо
	ErrInvalidRequest = errors.New("mailer client: invalid request")

	// ErrInvalidResponse возвращается при неожиданном ответе от сервиса
	ErrInvalidResponse = errors.New("mailer client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Письмо не отправлено, бронирование при этом остается в силе
	ErrServiceDegraded = errors.New("mailer unavailable: graceful degradation applied")
)
