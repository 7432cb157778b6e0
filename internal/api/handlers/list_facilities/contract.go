package list_facilities

import (
	"context"

	"github.com/m04kA/SMC-SportsBooking/internal/service/catalog/models"
)

type FacilityService interface {
	ListFacilities(ctx context.Context, req *models.ListFacilitiesRequest) (*models.FacilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
