package server

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/svgbanner/pkg/observability"
)

var durationBuckets = []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Metrics records banner events in Prometheus collectors. It implements the
// request, render and encode hooks of package observability.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	renderDuration  *prometheus.HistogramVec
	renderErrors    *prometheus.CounterVec
	encodeDuration  *prometheus.HistogramVec
	encodeBytes     *prometheus.HistogramVec
	encodeErrors    *prometheus.CounterVec
	encodesInFlight prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "svgbanner_requests_total",
				Help: "Total number of banner requests",
			},
			[]string{"theme", "format", "status"},
		),
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "svgbanner_request_duration_seconds",
				Help:    "Duration of banner requests",
				Buckets: durationBuckets,
			},
			[]string{"format"},
		),
		renderDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "svgbanner_render_duration_seconds",
				Help:    "Duration of background and text rendering",
				Buckets: durationBuckets,
			},
			[]string{"theme"},
		),
		renderErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "svgbanner_render_errors_total",
				Help: "Total number of failed renders",
			},
			[]string{"theme"},
		),
		encodeDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "svgbanner_encode_duration_seconds",
				Help:    "Duration of raster encoding",
				Buckets: durationBuckets,
			},
			[]string{"format"},
		),
		encodeBytes: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "svgbanner_encode_bytes",
				Help:    "Size of encoded raster images",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
			},
			[]string{"format"},
		),
		encodeErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "svgbanner_encode_errors_total",
				Help: "Total number of failed raster encodings",
			},
			[]string{"format"},
		),
		encodesInFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "svgbanner_encodes_in_flight",
			Help: "Number of raster encodings in progress",
		}),
	}
}

// Install registers m as the global request, render and encode hooks.
func (m *Metrics) Install() {
	observability.SetRequestHooks(m)
	observability.SetRenderHooks(m)
	observability.SetEncodeHooks(m)
}

func (m *Metrics) OnResponse(_ context.Context, theme, format string, status int, d time.Duration) {
	m.requestsTotal.WithLabelValues(theme, format, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(format).Observe(d.Seconds())
}

func (m *Metrics) OnRenderStart(context.Context, string) {}

func (m *Metrics) OnRenderComplete(_ context.Context, theme string, d time.Duration, err error) {
	m.renderDuration.WithLabelValues(theme).Observe(d.Seconds())
	if err != nil {
		m.renderErrors.WithLabelValues(theme).Inc()
	}
}

func (m *Metrics) OnEncodeStart(context.Context, string) {
	m.encodesInFlight.Inc()
}

func (m *Metrics) OnEncodeComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	m.encodesInFlight.Dec()
	m.encodeDuration.WithLabelValues(format).Observe(d.Seconds())
	if err != nil {
		m.encodeErrors.WithLabelValues(format).Inc()
		return
	}
	m.encodeBytes.WithLabelValues(format).Observe(float64(size))
}
