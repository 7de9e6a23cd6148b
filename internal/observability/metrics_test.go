package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	sentBefore := testutil.ToFloat64(remindersSent)
	failedBefore := testutil.ToFloat64(remindersFailed)
	aerobicBefore := testutil.ToFloat64(calorieEstimates.WithLabelValues("AEROBIC"))

	RecordReminderSent()
	RecordReminderSent()
	RecordReminderFailed()
	RecordCalorieEstimate("AEROBIC")
	ObserveReminderJob(150 * time.Millisecond)

	assert.Equal(t, sentBefore+2, testutil.ToFloat64(remindersSent))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(remindersFailed))
	assert.Equal(t, aerobicBefore+1, testutil.ToFloat64(calorieEstimates.WithLabelValues("AEROBIC")))
	assert.Equal(t, 1, testutil.CollectAndCount(reminderJobDuration))
}
