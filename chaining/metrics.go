package chaining

import "github.com/prometheus/client_golang/prometheus"

var (
	hintsEmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sudokuchains",
		Name:      "hints_emitted_total",
		Help:      "Chaining hints emitted, by hint kind.",
	}, []string{"kind"})

	contradictionsFound = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sudokuchains",
		Name:      "contradictions_found_total",
		Help:      "Contradictions detected while draining a propagation frontier.",
	})

	propagationFrontier = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sudokuchains",
		Name:      "propagation_frontier_size",
		Help:      "Size of the pending on/off frontier at the start of do_chaining.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	workerFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sudokuchains",
		Name:      "worker_failures_total",
		Help:      "Parallel fan-out workers that returned an error.",
	})
)

func init() {
	prometheus.MustRegister(hintsEmitted, contradictionsFound, propagationFrontier, workerFailures)
}
