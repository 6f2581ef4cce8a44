package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var httpRequestsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "memorylane",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "The latency of the HTTP requests.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "code"})

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		httpRequestsDuration.With(prometheus.Labels{
			"method": r.Method,
			"code":   strconv.Itoa(ww.Status()),
		}).Observe(time.Since(start).Seconds())
	})
}
