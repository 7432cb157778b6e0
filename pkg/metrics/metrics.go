package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	bookingsCreated  *prometheus.CounterVec
	bookingsRejected *prometheus.CounterVec
	bookingsCanceled *prometheus.CounterVec
	slotsGenerated   *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings created, by sport",
			ConstLabels: constLabels,
		}, []string{"sport"}),
		bookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_rejected_total",
			Help:        "Booking attempts rejected by the eligibility policy, by rule",
			ConstLabels: constLabels,
		}, []string{"rule"}),
		bookingsCanceled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Bookings cancelled, by sport",
			ConstLabels: constLabels,
		}, []string{"sport"}),
		slotsGenerated: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "slots_generated_per_request",
			Help:        "Number of slots generated per availability request",
			ConstLabels: constLabels,
			Buckets:     []float64{5, 10, 15, 20, 25, 30},
		}, []string{"facility"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.bookingsCreated,
		m.bookingsRejected,
		m.bookingsCanceled,
		m.slotsGenerated,
	)

	return m
}

// ObserveHTTPRequest фиксирует выполненный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) BookingCreated(sport string) {
	m.bookingsCreated.WithLabelValues(sport).Inc()
}

func (m *Metrics) BookingRejected(rule string) {
	m.bookingsRejected.WithLabelValues(rule).Inc()
}

func (m *Metrics) BookingCancelled(sport string) {
	m.bookingsCanceled.WithLabelValues(sport).Inc()
}

func (m *Metrics) SlotsGenerated(facilityID string, count int) {
	m.slotsGenerated.WithLabelValues(facilityID).Observe(float64(count))
}

// Nop заглушка для запуска без метрик
type Nop struct{}

func (Nop) BookingCreated(string) {}
func (Nop) BookingRejected(string) {}
func (Nop) BookingCancelled(string) {}
func (Nop) SlotsGenerated(string, int) {}
