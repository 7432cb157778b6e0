package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTimeRange возвращается, когда строку нельзя разобрать как диапазон "start - end"
var ErrInvalidTimeRange = errors.New("invalid time range format")

const rangeSeparator = "-"

// TimeRange интервал времени внутри одних суток
type TimeRange struct {
	Start TimeString
	End   TimeString
}

// NewTimeRange создает интервал и проверяет, что конец позже начала
func NewTimeRange(start, end TimeString) (TimeRange, error) {
	if err := start.Validate(); err != nil {
		return TimeRange{}, err
	}
	if err := end.Validate(); err != nil {
		return TimeRange{}, err
	}
	if !end.IsAfter(start) {
		return TimeRange{}, fmt.Errorf("%w: end %s is not after start %s", ErrInvalidTimeRange, end, start)
	}
	return TimeRange{Start: start, End: end}, nil
}

// ParseTimeRange разбирает "14:00 - 16:00" или "2:00 PM - 4:00 PM"
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, rangeSeparator)
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}

	start, err := NewTimeStringFromString(parts[0])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, s, err)
	}

	end, err := NewTimeStringFromString(parts[1])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, s, err)
	}

	return NewTimeRange(start, end)
}

// DurationMinutes длительность интервала в минутах
func (r TimeRange) DurationMinutes() int {
	return r.End.Minutes() - r.Start.Minutes()
}

// Overlaps проверяет реальное пересечение интервалов (граничащие интервалы не пересекаются)
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.IsBefore(other.End) && r.End.IsAfter(other.Start)
}

// IsAdjacent проверяет, что интервалы стыкуются встык с любой стороны
func (r TimeRange) IsAdjacent(other TimeRange) bool {
	return r.End.Equal(other.Start) || r.Start.Equal(other.End)
}

// String возвращает диапазон в 24-часовом формате "HH:MM - HH:MM"
func (r TimeRange) String() string {
	return r.Start.String() + " - " + r.End.String()
}

// Format12 возвращает диапазон в 12-часовом формате "h:mm AM - h:mm PM"
func (r TimeRange) Format12() string {
	return r.Start.Format12() + " - " + r.End.Format12()
}

// Is12Hour определяет, записан ли диапазон в 12-часовом формате
func Is12Hour(s string) bool {
	upper := strings.ToUpper(s)
	return strings.Contains(upper, "AM") || strings.Contains(upper, "PM")
}

// SplitRange делит строку диапазона на начало и конец
// Если разделителя нет, концом считается начало
func SplitRange(s string) (start, end string) {
	parts := strings.SplitN(s, rangeSeparator, 2)
	start = strings.TrimSpace(parts[0])
	if len(parts) == 1 {
		return start, start
	}
	return start, strings.TrimSpace(parts[1])
}

// To12Hour переводит "H:MM - H:MM" в "h:mm AM - h:mm PM"
// Строки, уже содержащие AM/PM, и строки, которые не удается разобрать, возвращаются без изменений
func To12Hour(timeRange string) string {
	if Is12Hour(timeRange) {
		return timeRange
	}

	parts := strings.Split(timeRange, rangeSeparator)
	if len(parts) != 2 {
		return timeRange
	}

	start, err := NewTimeStringFromString(parts[0])
	if err != nil {
		return timeRange
	}
	end, err := NewTimeStringFromString(parts[1])
	if err != nil {
		return timeRange
	}

	return start.Format12() + " - " + end.Format12()
}

// ParseStartMinutes возвращает минуты от полуночи для начала диапазона или для одиночного времени
func ParseStartMinutes(rangeOrTime string) (int, error) {
	start, _ := SplitRange(rangeOrTime)
	ts, err := NewTimeStringFromString(start)
	if err != nil {
		return 0, err
	}
	return ts.Minutes(), nil
}

// ParseEndMinutes возвращает минуты от полуночи для конца диапазона (или для одиночного времени)
func ParseEndMinutes(rangeOrTime string) (int, error) {
	_, end := SplitRange(rangeOrTime)
	ts, err := NewTimeStringFromString(end)
	if err != nil {
		return 0, err
	}
	return ts.Minutes(), nil
}
