package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Houeta/field-weather-service/internal/metrics"
	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
)

// accessLog records the status and duration of every routed request.
func accessLog(log *slog.Logger, m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			snoop := httpsnoop.CaptureMetrics(next, w, r)

			route := routeTemplate(r)
			m.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(snoop.Code)).Inc()
			m.HTTPSeconds.WithLabelValues(route).Observe(snoop.Duration.Seconds())

			log.InfoContext(r.Context(), "Request handled",
				"method", r.Method,
				"route", route,
				"status", snoop.Code,
				"duration", snoop.Duration,
				"bytes", snoop.Written,
			)
		})
	}
}

// routeTemplate keeps metric labels bounded by using the mux template instead of the raw path.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
