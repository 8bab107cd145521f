package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// AssetUploads counts asset store uploads by folder and outcome.
	AssetUploads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_asset_uploads_total",
		Help: "Total number of asset store uploads by folder and outcome",
	}, []string{"folder", "outcome"})

	// AssetCleanupFailures counts best-effort asset deletions that failed.
	// Failures never abort the primary operation; they leave orphaned blobs.
	AssetCleanupFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_asset_cleanup_failures_total",
		Help: "Total number of failed best-effort asset store deletions",
	})
)

// MustRegister attaches the application counters to the registry that backs
// the metrics endpoint.
func MustRegister(r prometheus.Registerer) {
	r.MustRegister(RedisErrors, AssetUploads, AssetCleanupFailures)
}
