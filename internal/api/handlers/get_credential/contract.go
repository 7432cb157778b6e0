package get_credential

import (
	"context"

	"github.com/m04kA/SMC-SportsBooking/internal/service/bookings/models"
)

type CredentialService interface {
	GetCredential(ctx context.Context, id string, userID int64) (*models.CredentialResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
