package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "listing", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "listing", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "listing", Name: "upstream_requests_total", Help: "Outbound requests."},
		[]string{"endpoint", "status"},
	)
	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "listing", Name: "upstream_request_duration_seconds",
			Help:    "Outbound request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "listing", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del|error
	)
	FilterEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "listing", Name: "filter_records_total", Help: "Records seen and kept by the listing filter."},
		[]string{"outcome"}, // outcome: in|out
	)
	FilterActiveLabels = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "listing", Name: "filter_active_labels",
			Help:    "Number of active filter labels per listing query.",
			Buckets: []float64{0, 1, 2, 3, 4, 6, 8, 12},
		},
	)
)

// Serve exposes reg on a side port. Empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return
	}
	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           SideMux(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

// SideMux is the handler tree served by Serve.
func SideMux(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))
	return mux
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, UpstreamRequests, UpstreamLatency,
		CacheEvents, FilterEvaluations, FilterActiveLabels)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveUpstream(endpoint string, status int, dur time.Duration) {
	UpstreamRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	UpstreamLatency.WithLabelValues(endpoint).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) {
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveFilter(active, in, out int) {
	FilterActiveLabels.Observe(float64(active))
	FilterEvaluations.WithLabelValues("in").Add(float64(in))
	FilterEvaluations.WithLabelValues("out").Add(float64(out))
}

func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}
