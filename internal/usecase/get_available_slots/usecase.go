package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SportsBooking/internal/infra/storage/catalog"
)

// UseCase use case для получения слотов объекта
type UseCase struct {
	catalog            CatalogRepository
	generator          *Generator
	metrics            Metrics
	timeProvider       TimeProvider
	logger             Logger
	advanceBookingDays int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog CatalogRepository,
	generator *Generator,
	metrics Metrics,
	advanceBookingDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:            catalog,
		generator:          generator,
		metrics:            metrics,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
		advanceBookingDays: advanceBookingDays,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, facility=%s, court=%d, date=%s",
		req.UserID, req.FacilityID, req.CourtIndex, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем объект
	facility, err := uc.catalog.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: facility id=%s not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get facility id=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 4. Проверяем номер корта
	if !facility.HasCourt(req.CourtIndex) {
		uc.logger.Warn("GetAvailableSlots: facility id=%s has no court %d (courts=%d)",
			facility.ID, req.CourtIndex, facility.Courts)
		return nil, ErrCourtNotFound
	}

	// 5. Валидация даты
	if err := validateDate(req.Date, now, uc.advanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 6. Генерируем слоты с вместимостью вида спорта
	rules := uc.catalog.SportRules(facility.Sport)
	slots := uc.generator.Generate(*facility, req.CourtIndex, req.Date, rules.Capacity, now)

	uc.metrics.SlotsGenerated(facility.ID, len(slots))
	uc.logger.Info("GetAvailableSlots: generated %d slots for facility=%s, court=%d, date=%s",
		len(slots), facility.ID, req.CourtIndex, req.Date.Format(domain.DateFormat))

	return &Response{
		FacilityID:   facility.ID,
		FacilityName: facility.Name,
		Sport:        facility.Sport,
		Location:     facility.Location,
		CourtIndex:   req.CourtIndex,
		Date:         time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, now.Location()),
		Capacity:     rules.Capacity,
		Slots:        slots,
	}, nil
}
