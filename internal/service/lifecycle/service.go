package lifecycle

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	"github.com/m04kA/SMC-SportsBooking/pkg/types"
)

// Config окна отмены и доступности QR-кода
type Config struct {
	CancellationNotice time.Duration // отмена возможна строго раньше чем за это время до начала
	CredentialLead     time.Duration // QR доступен с (начало - CredentialLead)
	CredentialGrace    time.Duration // и до (начало + CredentialGrace) включительно
}

// DefaultConfig окна по умолчанию: 60 минут на отмену, QR за 60 минут до и 20 минут после начала
func DefaultConfig() Config {
	return Config{
		CancellationNotice: domain.DefaultCancellationNoticeMinutes * time.Minute,
		CredentialLead:     domain.DefaultCredentialLeadMinutes * time.Minute,
		CredentialGrace:    domain.DefaultCredentialGraceMinutes * time.Minute,
	}
}

// Evaluator вычисляет статус бронирования и временные окна по текущему времени
// Ошибки разбора даты и времени не пробрасываются: каждая функция возвращает свое значение по умолчанию
type Evaluator struct {
	cfg    Config
	logger Logger
}

// NewEvaluator создает новый экземпляр
func NewEvaluator(cfg Config, logger Logger) *Evaluator {
	return &Evaluator{
		cfg:    cfg,
		logger: logger,
	}
}

// StartInstant момент начала бронирования
func (e *Evaluator) StartInstant(b *domain.Booking, now time.Time) (time.Time, error) {
	day, err := ParseDate(b.Date, now)
	if err != nil {
		return time.Time{}, err
	}

	start, err := types.ParseStartMinutes(b.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	return atMinutes(day, start), nil
}

// EndInstant момент окончания бронирования
// Без конца интервала за окончание принимается начало
func (e *Evaluator) EndInstant(b *domain.Booking, now time.Time) (time.Time, error) {
	day, err := ParseDate(b.Date, now)
	if err != nil {
		return time.Time{}, err
	}

	start, err := types.ParseStartMinutes(b.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	end, err := types.ParseEndMinutes(b.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	// Интервал через полночь
	if end < start {
		end += 24 * 60
	}

	return atMinutes(day, end), nil
}

// RealTimeStatus статус бронирования на момент now
// Cancelled не меняется, иначе Completed после окончания и Upcoming до него
func (e *Evaluator) RealTimeStatus(b *domain.Booking, now time.Time) domain.BookingStatus {
	if b.IsCancelled() {
		return domain.StatusCancelled
	}

	end, err := e.EndInstant(b, now)
	if err != nil {
		e.logger.Warn("RealTimeStatus: booking id=%s date=%q time=%q: %v, assuming upcoming", b.ID, b.Date, b.Time, err)
		return domain.StatusUpcoming
	}

	if now.After(end) {
		return domain.StatusCompleted
	}
	return domain.StatusUpcoming
}

// DateLabel дата бронирования для показа относительно now
func (e *Evaluator) DateLabel(b *domain.Booking, now time.Time) string {
	return DisplayDate(b.Date, now)
}

// IsUpcomingAndNotExpired окончание бронирования еще не наступило
// Хранимый статус не учитывается
func (e *Evaluator) IsUpcomingAndNotExpired(b *domain.Booking, now time.Time) bool {
	end, err := e.EndInstant(b, now)
	if err != nil {
		e.logger.Warn("IsUpcomingAndNotExpired: booking id=%s date=%q time=%q: %v, assuming upcoming", b.ID, b.Date, b.Time, err)
		return true
	}
	return end.After(now)
}

// IsCancellationAllowed до начала осталось больше CancellationNotice
func (e *Evaluator) IsCancellationAllowed(b *domain.Booking, now time.Time) bool {
	start, err := e.StartInstant(b, now)
	if err != nil {
		e.logger.Warn("IsCancellationAllowed: booking id=%s date=%q time=%q: %v, allowing", b.ID, b.Date, b.Time, err)
		return true
	}
	return start.Sub(now) > e.cfg.CancellationNotice
}

// IsCredentialAvailable now внутри окна [начало - CredentialLead, начало + CredentialGrace]
func (e *Evaluator) IsCredentialAvailable(b *domain.Booking, now time.Time) bool {
	start, err := e.StartInstant(b, now)
	if err != nil {
		e.logger.Warn("IsCredentialAvailable: booking id=%s date=%q time=%q: %v, hiding credential", b.ID, b.Date, b.Time, err)
		return false
	}

	from := start.Add(-e.cfg.CredentialLead)
	to := start.Add(e.cfg.CredentialGrace)
	return !now.Before(from) && !now.After(to)
}

// IsMoreThanOneHourAway до начала больше часа
func (e *Evaluator) IsMoreThanOneHourAway(b *domain.Booking, now time.Time) bool {
	start, err := e.StartInstant(b, now)
	if err != nil {
		e.logger.Warn("IsMoreThanOneHourAway: booking id=%s date=%q time=%q: %v", b.ID, b.Date, b.Time, err)
		return false
	}
	return now.Before(start.Add(-time.Hour))
}

// CredentialStatus текстовый статус QR-кода
func (e *Evaluator) CredentialStatus(b *domain.Booking, now time.Time) string {
	start, err := e.StartInstant(b, now)
	if err != nil {
		e.logger.Warn("CredentialStatus: booking id=%s date=%q time=%q: %v", b.ID, b.Date, b.Time, err)
		return "Unable to calculate"
	}

	from := start.Add(-e.cfg.CredentialLead)
	to := start.Add(e.cfg.CredentialGrace)

	switch {
	case now.After(to):
		return "QR Code expired"
	case !now.Before(from):
		return "Available now"
	}

	remaining := from.Sub(now)
	hours := int(remaining / time.Hour)
	minutes := int((remaining % time.Hour) / time.Minute)
	if hours > 0 {
		return fmt.Sprintf("Available in %dh %dm", hours, minutes)
	}
	return fmt.Sprintf("Available in %dm", minutes)
}
