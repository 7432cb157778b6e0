package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SportsBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SportsBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	lifecycle    LifecycleEvaluator
	metrics      Metrics
	shareBaseURL string
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	lifecycle LifecycleEvaluator,
	metrics Metrics,
	shareBaseURL string,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		lifecycle:    lifecycle,
		metrics:      metrics,
		shareBaseURL: shareBaseURL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id string, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%d", id, userID)

	booking, err := s.getOwned(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking, s.derive(booking)), nil
}

// GetUserBookings получает бронирования пользователя, новые первыми
// scope=active оставляет только хранимые Upcoming, которые еще не закончились
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, scope=%s", req.UserID, req.Scope)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	resp := &models.BookingListResponse{Bookings: make([]models.BookingResponse, 0, len(bookings))}

	for _, b := range bookings {
		if req.Scope == models.ScopeActive && !(b.IsStoredUpcoming() && s.lifecycle.IsUpcomingAndNotExpired(b, now)) {
			continue
		}
		resp.Bookings = append(resp.Bookings, *models.FromDomainBooking(b, s.deriveAt(b, now)))
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(resp.Bookings), req.UserID)
	return resp, nil
}

// Cancel отменяет бронирование
// Отменить можно только своё бронирование, которое еще не завершилось и начнется больше чем через час
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%d", id, req.UserID)

	// 1. Получаем бронирование и проверяем владельца
	booking, err := s.getOwned(ctx, "Cancel", id, req.UserID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()

	// 2. Отмененное или уже завершившееся отменить нельзя
	if !booking.CanBeCancelled() || s.lifecycle.RealTimeStatus(booking, now) != domain.StatusUpcoming {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
		return nil, ErrCannotCancel
	}

	// 3. Окно отмены
	if !s.lifecycle.IsCancellationAllowed(booking, now) {
		s.logger.Warn("Cancel: cancellation window closed for booking id=%s (%s %s)", id, booking.Date, booking.Time)
		return nil, ErrCancellationWindowClosed
	}

	// 4. Отменяем
	cancelled, err := s.bookingRepo.Cancel(ctx, id, now)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Cancel: booking id=%s not found during cancellation", id)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrCannotCancel):
			s.logger.Warn("Cancel: booking id=%s was cancelled concurrently", id)
			return nil, ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.metrics.BookingCancelled(cancelled.Sport)
	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return models.FromDomainBooking(cancelled, s.deriveAt(cancelled, now)), nil
}

// GetCredential возвращает ссылку-приглашение и доступность пропуска
func (s *Service) GetCredential(ctx context.Context, id string, userID int64) (*models.CredentialResponse, error) {
	s.logger.Info("GetCredential: booking id=%s for user=%d", id, userID)

	booking, err := s.getOwned(ctx, "GetCredential", id, userID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	resp := &models.CredentialResponse{
		BookingID:  booking.ID,
		ShareURL:   domain.ShareURL(s.shareBaseURL, booking.ID),
		StatusText: s.lifecycle.CredentialStatus(booking, now),
	}

	// Отмененному бронированию пропуск не показывается
	if !booking.IsCancelled() {
		resp.Displayable = s.lifecycle.IsCredentialAvailable(booking, now)
	}

	return resp, nil
}

// GetByShareToken открывает бронирование по токену из ссылки-приглашения
// Токен совпадает с ID бронирования, владелец не проверяется
func (s *Service) GetByShareToken(ctx context.Context, token string) (*models.SharedBookingResponse, error) {
	s.logger.Info("GetByShareToken: token=%s", token)

	if !domain.IsBookingID(token) {
		return nil, fmt.Errorf("%w: malformed share token", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByShareToken: booking for token=%s not found", token)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByShareToken: repository error for token=%s: %v", token, err)
		return nil, fmt.Errorf("%w: GetByShareToken - repository error: %v", ErrInternal, err)
	}

	return models.ToSharedBooking(booking, s.derive(booking)), nil
}

// Remove удаляет бронирование из истории пользователя
// Удалить можно только отмененное или завершившееся бронирование
func (s *Service) Remove(ctx context.Context, id string, userID int64) error {
	s.logger.Info("Remove: removing booking id=%s by user=%d", id, userID)

	// 1. Получаем бронирование и проверяем владельца
	booking, err := s.getOwned(ctx, "Remove", id, userID)
	if err != nil {
		return err
	}

	// 2. Предстоящее бронирование сначала нужно отменить
	if s.lifecycle.RealTimeStatus(booking, s.timeProvider.Now()) == domain.StatusUpcoming {
		s.logger.Warn("Remove: booking id=%s is still upcoming", id)
		return ErrCannotRemove
	}

	// 3. Удаляем
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Remove: booking id=%s not found during removal", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Remove: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: successfully removed booking id=%s", id)
	return nil
}

// Вспомогательные методы

// getOwned получает бронирование и проверяет, что оно принадлежит пользователю
func (s *Service) getOwned(ctx context.Context, op string, id string, userID int64) (*domain.Booking, error) {
	if id == "" || userID <= 0 {
		return nil, fmt.Errorf("%w: bookingID and userID are required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("%s: access denied for user=%d to booking id=%s", op, userID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

func (s *Service) derive(b *domain.Booking) models.Derived {
	return s.deriveAt(b, s.timeProvider.Now())
}

func (s *Service) deriveAt(b *domain.Booking, now time.Time) models.Derived {
	status := s.lifecycle.RealTimeStatus(b, now)
	return models.Derived{
		Status:              status,
		DateLabel:           s.lifecycle.DateLabel(b, now),
		CanCancel:           status == domain.StatusUpcoming && s.lifecycle.IsCancellationAllowed(b, now),
		CredentialAvailable: !b.IsCancelled() && s.lifecycle.IsCredentialAvailable(b, now),
	}
}
