package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveClassification(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveClassification(2, 1, 3)
	r.ObserveClassification(1, 0, 0)

	assert.Equal(t, 3.0, testutil.ToFloat64(r.classified.WithLabelValues("matching")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.classified.WithLabelValues("similar")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.classified.WithLabelValues("missing")))
}

func TestRecorder_ObserveAutoUpdate(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveAutoUpdate(OutcomeUpdated, 2)
	r.ObserveAutoUpdate(OutcomeNothing, 0)
	r.ObserveAutoUpdate(OutcomeUpdated, 4)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.autoUpdates.WithLabelValues(OutcomeUpdated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.autoUpdates.WithLabelValues(OutcomeNothing)))

	count, err := testutil.GatherAndCount(reg, "resume_studio_conversions_per_update")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorder_Nil(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveClassification(1, 1, 1)
		r.ObserveAutoUpdate(OutcomeFailed, 0)
	})
}
