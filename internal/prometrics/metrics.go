package prometrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	conversionsTotal *prometheus.CounterVec
}

func New() *Metrics {
	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"endpoint"})

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests.",
		},
		[]string{"endpoint"})

	conversionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conversions_total",
			Help: "Total number of conversion requests by outcome.",
		},
		[]string{"outcome"})

	metrics := Metrics{
		requestsTotal:    requestsTotal,
		requestDuration:  requestDuration,
		conversionsTotal: conversionsTotal,
	}

	prometheus.MustRegister(
		requestsTotal,
		requestDuration,
		conversionsTotal,
	)

	return &metrics
}

func (m *Metrics) TrackHTTPRequest(start time.Time, r *http.Request) {
	url := r.URL.Path
	method := r.Method
	elapsed := time.Since(start).Seconds()

	m.requestsTotal.WithLabelValues(method + url).Inc()
	m.requestDuration.WithLabelValues(method + url).Observe(elapsed)
}

func (m *Metrics) TrackConversion(outcome string) {
	m.conversionsTotal.WithLabelValues(outcome).Inc()
}
