package get_shared_booking

import (
	"context"

	"github.com/m04kA/SMC-SportsBooking/internal/service/bookings/models"
)

type SharedBookingService interface {
	GetByShareToken(ctx context.Context, token string) (*models.SharedBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
