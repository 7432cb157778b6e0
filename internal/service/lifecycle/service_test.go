package lifecycle

import (
	"fmt"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	"github.com/m04kA/SMC-SportsBooking/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	logger.Nop
	warnings []string
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, v...))
}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func todayBooking(timeRange string) *domain.Booking {
	return &domain.Booking{ID: "BK-TEST0001", Date: domain.DayToday, Time: timeRange, Status: domain.StatusUpcoming}
}

func newEvaluator() *Evaluator {
	return NewEvaluator(DefaultConfig(), logger.Nop{})
}

func TestIsCancellationAllowed(t *testing.T) {
	e := newEvaluator()
	b := todayBooking("15:00 - 15:45")

	assert.True(t, e.IsCancellationAllowed(b, at(13, 59)), "61 minutes before")
	assert.False(t, e.IsCancellationAllowed(b, at(14, 0)), "exactly 60 minutes before")
	assert.False(t, e.IsCancellationAllowed(b, at(14, 1)), "59 minutes before")
	assert.False(t, e.IsCancellationAllowed(b, at(15, 30)), "after start")
}

func TestIsCancellationAllowed_TwelveHourFormat(t *testing.T) {
	e := newEvaluator()
	b := todayBooking("3:00 PM - 3:45 PM")

	assert.True(t, e.IsCancellationAllowed(b, at(13, 59)))
	assert.False(t, e.IsCancellationAllowed(b, at(14, 1)))
}

func TestIsCredentialAvailable(t *testing.T) {
	e := newEvaluator()
	b := todayBooking("3:00 PM - 3:45 PM")

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "61 minutes before", now: at(13, 59), want: false},
		{name: "60 minutes before", now: at(14, 0), want: true},
		{name: "30 minutes before", now: at(14, 30), want: true},
		{name: "20 minutes after", now: at(15, 20), want: true},
		{name: "21 minutes after", now: at(15, 21), want: false},
		{name: "25 minutes after", now: at(15, 25), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.IsCredentialAvailable(b, tt.now))
		})
	}
}

func TestIsCredentialAvailable_CustomGrace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CredentialGrace = 5 * time.Minute
	e := NewEvaluator(cfg, logger.Nop{})
	b := todayBooking("15:00 - 15:45")

	assert.True(t, e.IsCredentialAvailable(b, at(15, 5)))
	assert.False(t, e.IsCredentialAvailable(b, at(15, 6)))
}

func TestRealTimeStatus(t *testing.T) {
	e := newEvaluator()

	past := todayBooking("10:00 - 10:45")
	assert.Equal(t, domain.StatusCompleted, e.RealTimeStatus(past, at(12, 0)))

	running := todayBooking("11:30 - 12:15")
	assert.Equal(t, domain.StatusUpcoming, e.RealTimeStatus(running, at(12, 0)))

	exactlyEnded := todayBooking("11:15 - 12:00")
	assert.Equal(t, domain.StatusUpcoming, e.RealTimeStatus(exactlyEnded, at(12, 0)))

	cancelled := todayBooking("10:00 - 10:45")
	cancelled.Status = domain.StatusCancelled
	assert.Equal(t, domain.StatusCancelled, e.RealTimeStatus(cancelled, at(12, 0)))

	tomorrow := &domain.Booking{Date: domain.DayTomorrow, Time: "6:45 AM - 7:30 AM", Status: domain.StatusUpcoming}
	assert.Equal(t, domain.StatusUpcoming, e.RealTimeStatus(tomorrow, at(23, 0)))
}

func TestParseFailureDefaults(t *testing.T) {
	log := &recordingLogger{}
	e := NewEvaluator(DefaultConfig(), log)
	now := at(12, 0)

	badDate := &domain.Booking{ID: "BK-BAD00001", Date: "Someday", Time: "10:00 - 10:45", Status: domain.StatusUpcoming}
	badTime := &domain.Booking{ID: "BK-BAD00002", Date: domain.DayToday, Time: "morning", Status: domain.StatusUpcoming}

	for _, b := range []*domain.Booking{badDate, badTime} {
		assert.Equal(t, domain.StatusUpcoming, e.RealTimeStatus(b, now))
		assert.True(t, e.IsUpcomingAndNotExpired(b, now))
		assert.True(t, e.IsCancellationAllowed(b, now))
		assert.False(t, e.IsCredentialAvailable(b, now))
		assert.False(t, e.IsMoreThanOneHourAway(b, now))
		assert.Equal(t, "Unable to calculate", e.CredentialStatus(b, now))
	}

	assert.Len(t, log.warnings, 12)
	assert.Contains(t, log.warnings[0], "BK-BAD00001")
}

func TestIsUpcomingAndNotExpired_IgnoresStoredStatus(t *testing.T) {
	e := newEvaluator()

	b := todayBooking("13:00 - 13:45")
	b.Status = domain.StatusCancelled
	assert.True(t, e.IsUpcomingAndNotExpired(b, at(12, 0)))
	assert.False(t, e.IsUpcomingAndNotExpired(b, at(13, 45)))
}

func TestIsMoreThanOneHourAway(t *testing.T) {
	e := newEvaluator()
	b := todayBooking("15:00 - 15:45")

	assert.True(t, e.IsMoreThanOneHourAway(b, at(13, 59)))
	assert.False(t, e.IsMoreThanOneHourAway(b, at(14, 0)))
}

func TestCredentialStatus(t *testing.T) {
	e := newEvaluator()
	b := todayBooking("3:00 PM - 3:45 PM")

	assert.Equal(t, "Available in 2h 0m", e.CredentialStatus(b, at(12, 0)))
	assert.Equal(t, "Available in 1h 5m", e.CredentialStatus(b, at(12, 55)))
	assert.Equal(t, "Available in 12m", e.CredentialStatus(b, at(13, 48)))
	assert.Equal(t, "Available now", e.CredentialStatus(b, at(14, 0)))
	assert.Equal(t, "Available now", e.CredentialStatus(b, at(15, 20)))
	assert.Equal(t, "QR Code expired", e.CredentialStatus(b, at(15, 21)))
}

func TestEndInstant_AcrossMidnight(t *testing.T) {
	e := newEvaluator()
	b := todayBooking("11:30 PM - 12:15 AM")

	end, err := e.EndInstant(b, at(12, 0))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 11, 0, 15, 0, 0, time.UTC), end)
}

func TestParseDate(t *testing.T) {
	now := time.Date(2026, time.October, 19, 16, 30, 0, 0, time.UTC)

	tests := []struct {
		label string
		want  time.Time
	}{
		{label: "Today", want: time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)},
		{label: "tomorrow", want: time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)},
		{label: "Dec 12, 2024", want: time.Date(2024, time.December, 12, 0, 0, 0, 0, time.UTC)},
		{label: "Nov 03, 2026", want: time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC)},
		{label: "2026-11-05", want: time.Date(2026, time.November, 5, 0, 0, 0, 0, time.UTC)},
		{label: "Dec 12", want: time.Date(2026, time.December, 12, 0, 0, 0, 0, time.UTC)},
		{label: "Sep 1", want: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)},
		{label: "Jan 5", want: time.Date(2027, time.January, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseDate(tt.label, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDate("Decemb 12", now)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDayLabel(t *testing.T) {
	now := time.Date(2026, time.October, 19, 23, 50, 0, 0, time.UTC)

	assert.Equal(t, "Today", DayLabel(time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Tomorrow", DayLabel(time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Oct 21, 2026", DayLabel(time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Nov 02, 2026", DayLabel(time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC), now))
}

func TestSameDay(t *testing.T) {
	now := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

	assert.True(t, SameDay("Tomorrow", "Oct 20, 2026", now))
	assert.True(t, SameDay("Today", "Today", now))
	assert.False(t, SameDay("Today", "Tomorrow", now))
	assert.True(t, SameDay("garbage", "garbage", now))
	assert.False(t, SameDay("garbage", "Today", now))
}

func TestStoredDate_EvaluatedOnLaterDay(t *testing.T) {
	e := newEvaluator()
	createdAt := time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)

	b := &domain.Booking{
		ID:     "BK-LATER001",
		Date:   StoredDate(createdAt),
		Time:   "6:45 PM - 7:30 PM",
		Status: domain.StatusUpcoming,
	}
	require.Equal(t, "Oct 19, 2026", b.Date)

	later := time.Date(2026, time.October, 22, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, domain.StatusCompleted, e.RealTimeStatus(b, later))
	assert.False(t, e.IsUpcomingAndNotExpired(b, later))
	assert.False(t, e.IsCancellationAllowed(b, later))
	assert.Equal(t, "QR Code expired", e.CredentialStatus(b, later))
	assert.False(t, SameDay(b.Date, domain.DayToday, later))

	// В день создания бронирование еще предстоит
	assert.Equal(t, domain.StatusUpcoming, e.RealTimeStatus(b, createdAt))
	assert.True(t, e.IsCancellationAllowed(b, createdAt))
}

func TestDisplayDate(t *testing.T) {
	now := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	e := newEvaluator()

	assert.Equal(t, "Today", DisplayDate("Oct 19, 2026", now))
	assert.Equal(t, "Tomorrow", DisplayDate("Oct 20, 2026", now))
	assert.Equal(t, "Oct 21, 2026", DisplayDate("Oct 21, 2026", now))
	assert.Equal(t, "Decemb 12", DisplayDate("Decemb 12", now))
	assert.Equal(t, "Oct 19, 2026", DisplayDate("Oct 19, 2026", now.AddDate(0, 0, 3)))

	b := &domain.Booking{ID: "BK-LABEL001", Date: "Oct 20, 2026", Time: "14:00 - 15:00"}
	assert.Equal(t, "Tomorrow", e.DateLabel(b, now))
}

func TestStartInstant_DSTTransitionDay(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	e := newEvaluator()

	// 8 марта 2026 часы переводятся вперед в 2:00
	now := time.Date(2026, time.March, 8, 1, 0, 0, 0, ny)
	b := &domain.Booking{ID: "BK-DST00001", Date: "Mar 08, 2026", Time: "2:00 PM - 3:00 PM", Status: domain.StatusUpcoming}

	start, err := e.StartInstant(b, now)
	require.NoError(t, err)
	assert.Equal(t, 14, start.Hour())
	assert.Equal(t, 0, start.Minute())

	end, err := e.EndInstant(b, now)
	require.NoError(t, err)
	assert.Equal(t, 15, end.Hour())

	assert.Equal(t, domain.StatusUpcoming, e.RealTimeStatus(b, time.Date(2026, time.March, 8, 14, 59, 0, 0, ny)))
	assert.Equal(t, domain.StatusCompleted, e.RealTimeStatus(b, time.Date(2026, time.March, 8, 15, 1, 0, 0, ny)))
}
