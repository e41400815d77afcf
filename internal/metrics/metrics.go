package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPSeconds        *prometheus.HistogramVec
	UpstreamSeconds    *prometheus.HistogramVec
	UpstreamErrors     prometheus.Counter
	FieldsCreated      prometheus.Counter
	ValidationFailures *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "fields_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		}, []string{"route", "method", "code"}),
		HTTPSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fields_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		UpstreamSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fields_weather_upstream_request_duration_seconds",
			Help:    "Duration of requests to the weather station endpoints.",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
		UpstreamErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "fields_weather_upstream_errors_total",
			Help: "Total number of failed requests to the weather station endpoints.",
		}),
		FieldsCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "fields_created_total",
			Help: "Total number of fields stored.",
		}),
		ValidationFailures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "fields_validation_failures_total",
			Help: "Total number of rejected field payloads.",
		}, []string{"operation"}),
	}
}
