package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("sports-booking-test", reg)

	m.BookingCreated("Badminton")
	m.BookingCreated("Badminton")
	m.BookingRejected("daily_cap")
	m.BookingCancelled("Tennis")
	m.ObserveHTTPRequest("GET", "/api/v1/facilities", 200, 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsCreated.WithLabelValues("Badminton")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsRejected.WithLabelValues("daily_cap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsCanceled.WithLabelValues("Tennis")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/facilities", "200")))
}
