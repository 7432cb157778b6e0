package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	"github.com/m04kA/SMC-SportsBooking/internal/service/lifecycle"
	"github.com/m04kA/SMC-SportsBooking/pkg/types"
)

// RejectionCode машинный код причины отказа
type RejectionCode string

const (
	CodeNone                RejectionCode = ""
	CodeActiveLimit         RejectionCode = "active_limit"
	CodeDailyLimit          RejectionCode = "daily_limit"
	CodeConsecutiveSlot     RejectionCode = "consecutive_slot"
	CodeOverlappingSlot     RejectionCode = "overlapping_slot"
	CodeParticipantsTooFew  RejectionCode = "participants_too_few"
	CodeParticipantsTooMany RejectionCode = "participants_too_many"
	CodeSlotExpired         RejectionCode = "slot_expired"
	CodeSlotUnavailable     RejectionCode = "slot_unavailable"
	CodeNotEnoughSpots      RejectionCode = "not_enough_spots"
)

// Decision результат проверки правил
type Decision struct {
	Allowed bool
	Reason  string
	Code    RejectionCode
}

func allow() Decision {
	return Decision{Allowed: true}
}

func reject(code RejectionCode, format string, v ...interface{}) Decision {
	return Decision{Code: code, Reason: fmt.Sprintf(format, v...)}
}

// Candidate бронирование, которое пользователь хочет создать
type Candidate struct {
	Date             string // метка дня: "Today", "Tomorrow" или "Jan 02, 2006"
	Time             string // интервал слота
	ParticipantCount int
	Slot             domain.TimeSlot
}

// PolicyConfig лимиты правил бронирования
type PolicyConfig struct {
	MaxActiveBookings int
	MaxDailyBookings  int
	// CountExpiredAsActive - в лимит активных попадают все бронирования в статусе Upcoming,
	// в том числе уже прошедшие по времени
	CountExpiredAsActive bool
}

// DefaultPolicyConfig лимиты по умолчанию
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		MaxActiveBookings:    domain.DefaultMaxActiveBookings,
		MaxDailyBookings:     domain.DefaultMaxDailyBookings,
		CountExpiredAsActive: true,
	}
}

// Policy правила допуска нового бронирования
// Ничего не изменяет: решение зависит только от аргументов CanBook
type Policy struct {
	cfg       PolicyConfig
	lifecycle LifecycleEvaluator
	logger    Logger
}

// NewPolicy создает правила
func NewPolicy(cfg PolicyConfig, lifecycle LifecycleEvaluator, logger Logger) *Policy {
	return &Policy{
		cfg:       cfg,
		lifecycle: lifecycle,
		logger:    logger,
	}
}

// CanBook проверяет правила по порядку, возвращает первый отказ
// Порядок: лимит активных, лимит в день, соседние слоты, участники, доступность слота
func (p *Policy) CanBook(candidate Candidate, sport domain.SportRules, existing []*domain.Booking, now time.Time) Decision {
	if d := p.checkActiveLimit(existing, now); !d.Allowed {
		return d
	}

	sameDay := p.sameDayBookings(candidate, existing, now)

	if len(sameDay) >= p.cfg.MaxDailyBookings {
		return reject(CodeDailyLimit,
			"You can only book %d slots per day, please choose another date", p.cfg.MaxDailyBookings)
	}

	if d := p.checkConsecutive(candidate, sameDay); !d.Allowed {
		return d
	}

	if d := checkParticipants(candidate.ParticipantCount, sport); !d.Allowed {
		return d
	}

	return checkSlot(candidate)
}

func (p *Policy) checkActiveLimit(existing []*domain.Booking, now time.Time) Decision {
	active := 0
	for _, b := range existing {
		if !b.IsStoredUpcoming() {
			continue
		}
		if !p.cfg.CountExpiredAsActive && !p.lifecycle.IsUpcomingAndNotExpired(b, now) {
			continue
		}
		active++
	}

	if active >= p.cfg.MaxActiveBookings {
		return reject(CodeActiveLimit,
			"You already have %d active bookings, you can schedule another booking after a booking completes", p.cfg.MaxActiveBookings)
	}
	return allow()
}

// sameDayBookings не отмененные бронирования на день кандидата
func (p *Policy) sameDayBookings(candidate Candidate, existing []*domain.Booking, now time.Time) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	for _, b := range existing {
		if b.IsCancelled() {
			continue
		}
		if lifecycle.SameDay(b.Date, candidate.Date, now) {
			result = append(result, b)
		}
	}
	return result
}

// checkConsecutive запрещает слот, который стыкуется или пересекается с уже забронированным в тот же день
// Длительность каждого бронирования берется из его собственного интервала
func (p *Policy) checkConsecutive(candidate Candidate, sameDay []*domain.Booking) Decision {
	want, err := types.ParseTimeRange(candidate.Time)
	if err != nil {
		p.logger.Warn("CanBook: cannot parse candidate time %q: %v, skipping adjacency check", candidate.Time, err)
		return allow()
	}

	for _, b := range sameDay {
		have, err := types.ParseTimeRange(b.Time)
		if err != nil {
			p.logger.Warn("CanBook: booking id=%s has unparsable time %q: %v", b.ID, b.Time, err)
			continue
		}

		if want.Overlaps(have) {
			return reject(CodeOverlappingSlot,
				"You already have a booking at %s on this day", types.To12Hour(b.Time))
		}
		if want.IsAdjacent(have) {
			return reject(CodeConsecutiveSlot,
				"Consecutive slots are not allowed, you already have a booking at %s", types.To12Hour(b.Time))
		}
	}

	return allow()
}

func checkParticipants(count int, sport domain.SportRules) Decision {
	n := sport.NormalizeParticipants(count)
	switch {
	case n < sport.MinParticipants:
		return reject(CodeParticipantsTooFew,
			"%s requires at least %d participants", sport.Sport, sport.MinParticipants)
	case n > sport.MaxParticipants:
		return reject(CodeParticipantsTooMany,
			"%s allows at most %d participants", sport.Sport, sport.MaxParticipants)
	}
	return allow()
}

func checkSlot(candidate Candidate) Decision {
	slot := candidate.Slot
	switch {
	case slot.IsExpired:
		return reject(CodeSlotExpired, "This slot has already started, please choose a later slot")
	case slot.Available <= 0:
		return reject(CodeSlotUnavailable, "This slot is not available (%s)", unavailableText(slot.UnavailableReason))
	case slot.Available < candidate.ParticipantCount:
		return reject(CodeNotEnoughSpots,
			"Only %d spots left in this slot, you requested %d", slot.Available, candidate.ParticipantCount)
	}
	return allow()
}

func unavailableText(reason domain.UnavailableReason) string {
	switch reason {
	case domain.ReasonBooked:
		return "fully booked"
	case domain.ReasonBlocked:
		return "blocked by admin"
	case domain.ReasonMaintenance:
		return "down for maintenance"
	default:
		return "no spots left"
	}
}
