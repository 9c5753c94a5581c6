package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Asset upload outcomes
	AssetUploadCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asset_upload_count",
			Help: "Total number of asset uploads",
		},
		[]string{"kind", "status"}, // kind: project, inquiry; status: success, rejected, failed
	)

	// Inquiry submissions
	InquiryCreatedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inquiry_created_count",
			Help: "Total number of inquiries created",
		},
	)
)

// RecordHTTPRequestDuration records the latency of one handled request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementAssetUpload counts one asset upload outcome.
func IncrementAssetUpload(kind, status string) {
	AssetUploadCount.WithLabelValues(kind, status).Inc()
}

// IncrementInquiryCreated counts one inquiry submission.
func IncrementInquiryCreated() {
	InquiryCreatedCount.Inc()
}
