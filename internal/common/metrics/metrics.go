// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	// BenchmarkScores observes the IPO readiness and resilience scores.
	BenchmarkScores = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "benchmark_score",
			Help:    "Distribution of composite benchmark scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
		[]string{"score_type"},
	)

	BenchmarkRatings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchmark_ratings_total",
			Help: "Qualitative ratings assigned per metric",
		},
		[]string{"metric", "rating"},
	)

	// BenchmarkFallbacks counts silently substituted buckets and categories.
	BenchmarkFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchmark_fallbacks_total",
			Help: "Lookups answered from a fallback table",
		},
		[]string{"task_type"},
	)
)

// ObserveScore records a composite score.
func ObserveScore(scoreType string, score int) {
	BenchmarkScores.WithLabelValues(scoreType).Observe(float64(score))
}

// CountRating records one rated metric.
func CountRating(metric, rating string) {
	BenchmarkRatings.WithLabelValues(metric, rating).Inc()
}

// CountFallbacks adds n fallback substitutions for a task type.
func CountFallbacks(taskType string, n int) {
	if n > 0 {
		BenchmarkFallbacks.WithLabelValues(taskType).Add(float64(n))
	}
}
