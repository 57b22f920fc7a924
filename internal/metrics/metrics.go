// Package metrics exposes Prometheus instrumentation for keyword comparison and auto-updates.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for auto-update attempts.
const (
	OutcomeUpdated    = "updated"
	OutcomeNothing    = "nothing_to_update"
	OutcomeInProgress = "in_progress"
	OutcomeFailed     = "failed"
)

// Recorder groups the collectors used by the studio workflow.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	classified  *prometheus.CounterVec
	autoUpdates *prometheus.CounterVec
	conversions prometheus.Histogram
}

// NewRecorder registers the collectors with reg. Pass prometheus.DefaultRegisterer in
// production and a fresh prometheus.NewRegistry() in tests.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		classified: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_studio_keywords_classified_total",
				Help: "Job keywords classified, by bucket",
			},
			[]string{"bucket"},
		),
		autoUpdates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_studio_auto_updates_total",
				Help: "Auto-update attempts, by outcome",
			},
			[]string{"outcome"},
		),
		conversions: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "resume_studio_conversions_per_update",
				Help:    "Conversion pairs applied per successful auto-update",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
			},
		),
	}
}

// ObserveClassification adds bucket sizes from one classification.
func (r *Recorder) ObserveClassification(matching, similar, missing int) {
	if r == nil {
		return
	}
	r.classified.WithLabelValues("matching").Add(float64(matching))
	r.classified.WithLabelValues("similar").Add(float64(similar))
	r.classified.WithLabelValues("missing").Add(float64(missing))
}

// ObserveAutoUpdate counts one auto-update attempt. conversions is only recorded
// for OutcomeUpdated.
func (r *Recorder) ObserveAutoUpdate(outcome string, conversions int) {
	if r == nil {
		return
	}
	r.autoUpdates.WithLabelValues(outcome).Inc()
	if outcome == OutcomeUpdated {
		r.conversions.Observe(float64(conversions))
	}
}
