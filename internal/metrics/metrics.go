package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "turnero_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "turnero_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SlotsGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "turnero_slots_generated_total",
			Help: "Total number of slots created by week generation",
		},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "turnero_bookings_total",
			Help: "Total number of booking attempts",
		},
		[]string{"outcome"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "turnero_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	SlotsFinalizedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "turnero_slots_finalized_total",
			Help: "Total number of slots moved to finalized by the sweep",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "turnero_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "turnero_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	CalendarCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "turnero_calendar_cache_total",
			Help: "Calendar cache lookups by result",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(outcome string) {
	BookingsTotal.WithLabelValues(outcome).Inc()
}

func RecordCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordSlotsGenerated(n int) {
	SlotsGeneratedTotal.Add(float64(n))
}

func RecordSlotsFinalized(n int64) {
	SlotsFinalizedTotal.Add(float64(n))
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordCalendarCache(result string) {
	CalendarCacheTotal.WithLabelValues(result).Inc()
}
