package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_http_requests_total",
			Help: "HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cms_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	Uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_image_uploads_total",
			Help: "Image uploads sent to the storage provider",
		},
		[]string{"folder", "status"},
	)
	UploadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cms_image_upload_duration_seconds",
			Help:    "Time spent in the storage provider per upload",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"folder"},
	)
)

var registerOnce sync.Once

// Register adds the collectors to the default registry. Safe to call more
// than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequests, HTTPDuration, Uploads, UploadDuration)
	})
}
