package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dshills/pbt/pkg/quantifier"
	"github.com/dshills/pbt/pkg/runner"
)

// Gauges exposed on --metrics-addr's /metrics endpoint. recordMetrics
// sets them from the Summary once the run has finished; they read zero
// while the run is in progress.
var (
	metricProperties = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pbt_properties_total",
		Help: "Properties evaluated in the most recent run.",
	})
	metricSamples = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pbt_samples_total",
		Help: "Samples drawn across all properties in the most recent run.",
	})
	metricCounterexamples = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pbt_counterexamples_total",
		Help: "Counterexamples found in the most recent run.",
	})
	metricPredicateErrors = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pbt_predicate_errors_total",
		Help: "Predicate errors found in the most recent run.",
	})
)

func recordMetrics(summary *runner.Summary) {
	metricProperties.Set(float64(len(summary.Results)))

	samples, counterexamples, predicateErrors := 0, 0, 0
	for _, r := range summary.Results {
		samples += r.SamplesRun
		if r.Failing == nil {
			continue
		}
		switch r.Failing.Kind {
		case quantifier.CounterExample:
			counterexamples++
		case quantifier.PredicateErrorKind:
			predicateErrors++
		}
	}
	metricSamples.Set(float64(samples))
	metricCounterexamples.Set(float64(counterexamples))
	metricPredicateErrors.Set(float64(predicateErrors))
}
