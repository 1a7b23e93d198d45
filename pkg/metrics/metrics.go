package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// RequestsTotal counts handled requests by route and status code
var RequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storefront_requests_total",
		Help: "Total number of HTTP requests handled, by route and status",
	},
	[]string{"route", "status"},
)

func init() {
	prometheus.MustRegister(RequestsTotal)
}
