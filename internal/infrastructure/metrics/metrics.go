package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for the payment-confirmation flow.
var (
	WebhookRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_webhook_requests_total",
			Help: "Total number of payment-code webhook deliveries received",
		},
	)

	WebhookRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_webhook_rejected_total",
			Help: "Total number of webhook deliveries rejected before any store mutation",
		},
	)

	WebhookNoopTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_webhook_noop_total",
			Help: "Total number of webhook deliveries acknowledged without a state transition",
		},
	)

	VerificationRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_verification_requests_total",
			Help: "Total number of verification requests",
		},
	)

	VerificationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "payment_verification_duration_seconds",
			Help:    "Duration of verification requests",
			Buckets: prometheus.DefBuckets,
		},
	)

	AnalyticsEventsEmittedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_events_emitted_total",
			Help: "Total number of analytics events handed to the tracker",
		},
	)

	AnalyticsEventsDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_events_dropped_total",
			Help: "Total number of analytics events dropped (full queue or sink failure)",
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(WebhookRequestsTotal)
	prometheus.MustRegister(WebhookRejectedTotal)
	prometheus.MustRegister(WebhookNoopTotal)
	prometheus.MustRegister(VerificationRequestsTotal)
	prometheus.MustRegister(VerificationDuration)
	prometheus.MustRegister(AnalyticsEventsEmittedTotal)
	prometheus.MustRegister(AnalyticsEventsDroppedTotal)
}
