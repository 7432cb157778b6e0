package check_eligibility

import (
	"context"

	createBooking "github.com/m04kA/SMC-SportsBooking/internal/usecase/create_booking"
)

type EligibilityChecker interface {
	CheckEligibility(ctx context.Context, req *createBooking.Request) (*createBooking.EligibilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
