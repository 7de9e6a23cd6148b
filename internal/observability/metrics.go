package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	remindersSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reminders_sent_total",
		Help: "Reminder e-mails delivered by the reminder job.",
	})
	remindersFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reminders_failed_total",
		Help: "Reminders the job could not deliver or persist.",
	})
	reminderJobDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "reminder_job_duration_seconds",
		Help:    "Wall time of one reminder job tick.",
		Buckets: prometheus.DefBuckets,
	})
	calorieEstimates = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calorie_estimates_total",
		Help: "Calorie estimates computed for logged exercises.",
	}, []string{"type"})
)

func init() {
	prometheus.MustRegister(remindersSent, remindersFailed, reminderJobDuration, calorieEstimates)
}

func RecordReminderSent() {
	remindersSent.Inc()
}

func RecordReminderFailed() {
	remindersFailed.Inc()
}

func ObserveReminderJob(d time.Duration) {
	reminderJobDuration.Observe(d.Seconds())
}

// RecordCalorieEstimate counts one estimate for the given exercise type.
func RecordCalorieEstimate(exerciseType string) {
	calorieEstimates.WithLabelValues(exerciseType).Inc()
}
