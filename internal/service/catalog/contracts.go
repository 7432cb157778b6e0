package catalog

import (
	"context"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
)

// CatalogRepository интерфейс справочника объектов
type CatalogRepository interface {
	ListFacilities(ctx context.Context) ([]domain.Facility, error)
	SportRules(sport string) domain.SportRules
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
