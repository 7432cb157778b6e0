package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
)

// Даты без года старше этого порога считаются датами следующего года
const yearRolloverThreshold = 180 * 24 * time.Hour

var datedLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	domain.DateFormat,
}

var undatedLayouts = []string{
	"Jan 2",
	"January 2",
}

// ParseDate разбирает метку даты бронирования относительно now
// Поддерживаются "Today", "Tomorrow", "Dec 12", "Dec 12, 2024" и "2024-12-12"
// Результат - полночь дня в часовом поясе now
func ParseDate(label string, now time.Time) (time.Time, error) {
	label = strings.TrimSpace(label)
	today := startOfDay(now)

	switch {
	case strings.EqualFold(label, domain.DayToday):
		return today, nil
	case strings.EqualFold(label, domain.DayTomorrow):
		return today.AddDate(0, 0, 1), nil
	}

	for _, layout := range datedLayouts {
		if d, err := time.ParseInLocation(layout, label, now.Location()); err == nil {
			return d, nil
		}
	}

	for _, layout := range undatedLayouts {
		d, err := time.ParseInLocation(layout, label, now.Location())
		if err != nil {
			continue
		}
		d = time.Date(now.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
		if today.Sub(d) > yearRolloverThreshold {
			d = d.AddDate(1, 0, 0)
		}
		return d, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, label)
}

// StoredDate дата бронирования для хранения, всегда в абсолютном виде "Jan 02, 2006"
func StoredDate(date time.Time) string {
	return date.Format(domain.DisplayDateFormat)
}

// DisplayDate метка даты для показа: "Today", "Tomorrow" или дата как есть
// Неразобранная метка возвращается без изменений
func DisplayDate(label string, now time.Time) string {
	d, err := ParseDate(label, now)
	if err != nil {
		return label
	}
	return DayLabel(d, now)
}

// DayLabel метка дня относительно now: "Today", "Tomorrow" или "Jan 02, 2006"
func DayLabel(date, now time.Time) string {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	today := startOfDay(now)

	switch {
	case day.Equal(today):
		return domain.DayToday
	case day.Equal(today.AddDate(0, 0, 1)):
		return domain.DayTomorrow
	default:
		return day.Format(domain.DisplayDateFormat)
	}
}

// SameDay проверяет, что две метки даты указывают на один день
// Если хотя бы одну метку не удалось разобрать, сравниваются строки
func SameDay(a, b string, now time.Time) bool {
	da, errA := ParseDate(a, now)
	db, errB := ParseDate(b, now)
	if errA != nil || errB != nil {
		return strings.TrimSpace(a) == strings.TrimSpace(b)
	}
	return da.Equal(db)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// atMinutes момент day + minutes по настенным часам, переход на летнее время не сдвигает результат
func atMinutes(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, minutes, 0, 0, day.Location())
}
