package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "code"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "code"},
	)

	// Listener
	notificationsReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listener_notifications_received_total",
			Help: "Database notifications received, by channel.",
		},
		[]string{"channel"},
	)
	handlerOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listener_handler_outcomes_total",
			Help: "Outcome of each notification handler unit.",
		},
		[]string{"channel", "outcome"},
	)
	reconnects = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "listener_reconnects_total",
			Help: "Number of times the listener lost its connection and backed off.",
		},
	)
	listenerState = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "listener_state",
			Help: "Current listener state (0=disconnected, 1=connecting, 2=listening, 3=stopped).",
		},
	)

	// Dispatch
	dispatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_total",
			Help: "Delivery attempts by message kind and result.",
		},
		[]string{"kind", "result"},
	)
	dispatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dispatch_duration_seconds",
			Help:    "Time spent in one outbound send (seconds).",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Scheduler
	reminders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminders_total",
			Help: "Reminder scheduling events by kind, e.g. armed, skipped, declined, fired, cancelled, rearmed, record_failed.",
		},
		[]string{"event"},
	)
	remindersArmed = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "reminders_armed",
			Help: "Reminders currently armed in this process.",
		},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,

			notificationsReceived,
			handlerOutcomes,
			reconnects,
			listenerState,

			dispatches,
			dispatchDuration,

			reminders,
			remindersArmed,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// --- HTTP ---
func ObserveHTTPRequest(method, route, code string, d time.Duration) {
	httpRequests.WithLabelValues(method, route, code).Inc()
	httpDuration.WithLabelValues(method, route, code).Observe(d.Seconds())
}

// --- Listener ---
func IncNotificationReceived(channel string) { notificationsReceived.WithLabelValues(channel).Inc() }
func IncHandlerOutcome(channel, outcome string) {
	handlerOutcomes.WithLabelValues(channel, outcome).Inc()
}
func IncReconnect()              { reconnects.Inc() }
func SetListenerState(state int) { listenerState.Set(float64(state)) }

// --- Dispatch ---
func IncDispatch(kind, result string) { dispatches.WithLabelValues(kind, result).Inc() }
func ObserveDispatch(d time.Duration) { dispatchDuration.Observe(d.Seconds()) }
func DispatchCount(kind, result string) float64 {
	return counterValue(dispatches.WithLabelValues(kind, result))
}

// --- Scheduler ---
func IncReminder(event string) { reminders.WithLabelValues(event).Inc() }
func SetRemindersArmed(n int)  { remindersArmed.Set(float64(n)) }
func ReminderCount(event string) float64 {
	return counterValue(reminders.WithLabelValues(event))
}
