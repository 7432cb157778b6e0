package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SportsBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SportsBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-SportsBooking/internal/service/lifecycle"
	"github.com/m04kA/SMC-SportsBooking/pkg/locker"
)

// Config параметры use case
type Config struct {
	AdvanceBookingDays int
	ShareBaseURL       string
	// LockTimeout ограничивает ожидание блокировки пользователя вместе с проверкой и вставкой, 0 = без ограничения
	LockTimeout time.Duration
}

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      CatalogRepository
	generator    SlotGenerator
	policy       *Policy
	locker       Locker
	mailer       Mailer
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	cfg          Config
}

// NewUseCase создает новый экземпляр use case
// mailer может быть nil: подтверждения по почте отключены
func NewUseCase(
	bookingRepo BookingRepository,
	catalog CatalogRepository,
	generator SlotGenerator,
	policy *Policy,
	locker Locker,
	mailer Mailer,
	metrics Metrics,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		generator:    generator,
		policy:       policy,
		locker:       locker,
		mailer:       mailer,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		cfg:          cfg,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// prepared данные, общие для проверки и создания
type prepared struct {
	facility  *domain.Facility
	rules     domain.SportRules
	candidate Candidate
}

// Execute выполняет use case создания бронирования
// Проверка правил и вставка выполняются под блокировкой пользователя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, facility=%s, court=%d, date=%s, slot=%s, participants=%d",
		req.UserID, req.FacilityID, req.CourtIndex, req.Date.Format(domain.DateFormat), req.SlotID, req.ParticipantCount)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация, объект, корт, дата и слот
	p, err := uc.prepare(ctx, req, now)
	if err != nil {
		return nil, err
	}

	var result *domain.Booking

	waitCtx := ctx
	if uc.cfg.LockTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, uc.cfg.LockTimeout)
		defer cancel()
	}

	// 3. Проверка правил и сохранение под блокировкой пользователя
	err = uc.locker.WithLock(waitCtx, lockKey(req.UserID), func(lockCtx context.Context) error {
		// 3.1. Получаем бронирования пользователя
		existing, err := uc.bookingRepo.GetByUserID(lockCtx, req.UserID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings of user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.2. Проверяем правила
		decision := uc.policy.CanBook(p.candidate, p.rules, existing, now)
		if !decision.Allowed {
			uc.logger.Warn("CreateBooking: rejected for user=%d: %s (%s)", req.UserID, decision.Code, decision.Reason)
			uc.metrics.BookingRejected(string(decision.Code))
			return &RejectionError{Decision: decision}
		}

		// 3.3. Создаем бронирование с денормализацией данных объекта
		booking := &domain.Booking{
			UserID:           req.UserID,
			FacilityID:       p.facility.ID,
			CourtIndex:       req.CourtIndex,
			FacilityName:     p.facility.Name,
			Sport:            p.facility.Sport,
			Location:         p.facility.Location,
			FacilitySize:     p.rules.FacilitySize,
			Date:             p.candidate.Date,
			Time:             p.candidate.Time,
			ParticipantCount: p.candidate.ParticipantCount,
			Participants:     domain.ParticipantsLabel(p.candidate.ParticipantCount),
			Status:           domain.StatusUpcoming,
			CreatedAt:        now,
		}

		// 3.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(lockCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, locker.ErrLockTimeout) {
			uc.logger.Warn("CreateBooking: lock timeout for user=%d", req.UserID)
			return nil, ErrBusy
		}
		return nil, err
	}

	uc.metrics.BookingCreated(result.Sport)
	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	shareURL := domain.ShareURL(uc.cfg.ShareBaseURL, result.ID)

	// 4. Подтверждение по почте не влияет на результат бронирования
	sent := uc.sendConfirmation(ctx, result, shareURL, req.ConfirmationEmails)

	return &Response{
		Booking:          *result,
		ShareURL:         shareURL,
		ConfirmationSent: sent,
	}, nil
}

// CheckEligibility проверяет правила без создания бронирования
func (uc *UseCase) CheckEligibility(ctx context.Context, req *Request) (*EligibilityResponse, error) {
	uc.logger.Info("CheckEligibility: user=%d, facility=%s, court=%d, date=%s, slot=%s",
		req.UserID, req.FacilityID, req.CourtIndex, req.Date.Format(domain.DateFormat), req.SlotID)

	now := uc.timeProvider.Now()

	p, err := uc.prepare(ctx, req, now)
	if err != nil {
		return nil, err
	}

	existing, err := uc.bookingRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("CheckEligibility: failed to get bookings of user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return &EligibilityResponse{
		Decision: uc.policy.CanBook(p.candidate, p.rules, existing, now),
		Slot:     p.candidate.Slot,
	}, nil
}

func (uc *UseCase) prepare(ctx context.Context, req *Request, now time.Time) (*prepared, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект
	facility, err := uc.catalog.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrFacilityNotFound) {
			uc.logger.Warn("CreateBooking: facility id=%s not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get facility id=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Проверяем номер корта
	if !facility.HasCourt(req.CourtIndex) {
		uc.logger.Warn("CreateBooking: facility id=%s has no court %d", facility.ID, req.CourtIndex)
		return nil, ErrCourtNotFound
	}

	// 4. Валидация даты
	if err := validateDate(req.Date, now, uc.cfg.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 5. Находим слот в расписании
	rules := uc.catalog.SportRules(facility.Sport)
	slot, ok := uc.generator.FindSlot(*facility, req.CourtIndex, req.Date, rules.Capacity, now, req.SlotID)
	if !ok {
		uc.logger.Warn("CreateBooking: slot id=%s not found for facility=%s court=%d date=%s",
			req.SlotID, facility.ID, req.CourtIndex, req.Date.Format(domain.DateFormat))
		return nil, ErrSlotNotFound
	}

	return &prepared{
		facility: facility,
		rules:    rules,
		candidate: Candidate{
			Date:             lifecycle.StoredDate(req.Date),
			Time:             slot.TimeRange,
			ParticipantCount: rules.NormalizeParticipants(req.ParticipantCount),
			Slot:             *slot,
		},
	}, nil
}

func (uc *UseCase) sendConfirmation(ctx context.Context, b *domain.Booking, shareURL string, to []string) bool {
	if uc.mailer == nil || len(to) == 0 {
		return false
	}

	err := uc.mailer.SendConfirmationWithGracefulDegradation(ctx, &mailer.Confirmation{
		To:           to,
		BookingID:    b.ID,
		FacilityName: b.FacilityName,
		Sport:        b.Sport,
		Location:     b.Location,
		Date:         b.Date,
		Time:         b.Time,
		Participants: b.Participants,
		ShareURL:     shareURL,
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: confirmation for booking id=%s not sent: %v", b.ID, err)
		return false
	}
	return true
}

func lockKey(userID int64) string {
	return fmt.Sprintf("booking:user:%d", userID)
}
