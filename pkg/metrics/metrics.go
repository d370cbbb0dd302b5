// Package metrics defines Prometheus metrics for contact submissions and
// outbound mail delivery.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes
const (
	OutcomeSent    = "sent"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

var (
	ContactSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_contact_submissions_total",
		Help: "Total number of contact submissions by outcome",
	}, []string{"outcome"})
	MailSendDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "portfolio_mail_send_duration_seconds",
		Help:    "Time spent handing a message to the mail transport",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(ContactSubmissions)
	prometheus.MustRegister(MailSendDuration)
}

// MetricsHandler returns an http.Handler exposing Prometheus metrics.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
