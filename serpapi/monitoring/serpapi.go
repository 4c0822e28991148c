package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	SerpapiCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "serpapi_calls",
		Help: "Total calls made to serpapi",
	}, []string{"endpoint", "status"})

	SerpapiLatency = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: "serpapi_latency_ms",
		Help: "Latency of calls made to serpapi in milliseconds",
	}, []string{"endpoint"})
)
