package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	SubmissionsReceived prometheus.Counter
	SubmissionsRejected prometheus.Counter
	SubmissionsStored   prometheus.Counter
	StorageFailures     prometheus.Counter
	NotificationsSent   prometheus.Counter
	NotificationsFailed prometheus.Counter
	UnreadMessages      prometheus.Gauge
}

// NewMetrics creates new Prometheus metrics
func NewMetrics() *Metrics {
	return &Metrics{
		SubmissionsReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "streamline_contact_submissions_received",
			Help: "Total number of contact form submissions received",
		}),
		SubmissionsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "streamline_contact_submissions_rejected",
			Help: "Total number of submissions rejected by validation",
		}),
		SubmissionsStored: promauto.NewCounter(prometheus.CounterOpts{
			Name: "streamline_contact_submissions_stored",
			Help: "Total number of submissions persisted to the database",
		}),
		StorageFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "streamline_contact_storage_failures",
			Help: "Total number of failed database writes for submissions",
		}),
		NotificationsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "streamline_contact_notifications_sent",
			Help: "Total number of notification emails sent successfully",
		}),
		NotificationsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "streamline_contact_notifications_failed",
			Help: "Total number of notification emails that failed to send",
		}),
		UnreadMessages: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "streamline_contact_unread_messages",
			Help: "Number of stored contact messages not yet marked as read",
		}),
	}
}
