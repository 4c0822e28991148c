package monitoring

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestSummary = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: "http_requests",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	HistoryEntriesRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "history_entries_recorded",
		Help: "Total number of searches recorded in the history store",
	})
)

func HandlerMetrics(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		// This is so that GET /api/v1/searches/abc is formatted as GET /api/v1/searches/{search_id}
		routePattern := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			routePattern = strings.Replace(strings.Join(rctx.RoutePatterns, ""), "/*/", "/", -1)
		}

		requestSummary.WithLabelValues(r.Method, routePattern, strconv.Itoa(ww.Status())).Observe(float64(time.Since(start).Milliseconds()))
	}
	return http.HandlerFunc(fn)
}

func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		requestSummary,
		HistoryEntriesRecorded,
		SerpapiCalls,
		SerpapiLatency,
	)

	return registry
}

func ExposeMetrics(port int) {
	registry := NewRegistry()

	slog.Info("exposing relay metrics", "port", port)

	go func() {
		handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

		if err := http.ListenAndServe(fmt.Sprintf(":%d", port), handler); err != nil {
			log.Fatalf("error starting metrics server: %v", err)
		}
	}()
}
