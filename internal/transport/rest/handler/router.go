package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Houeta/field-weather-service/internal/metrics"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// RouterConfig carries the collaborators of the HTTP router.
type RouterConfig struct {
	Log        *slog.Logger
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer // Served on /metrics
	CORSOrigin string
}

// NewRouter registers the API, health and metrics routes of srv.
func NewRouter(srv *Server, cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.Use(accessLog(cfg.Log, cfg.Metrics))

	r.HandleFunc("/healthz", srv.HealthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.HandleFunc("/api", srv.PingHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/fields", srv.ListFieldsHandler).Methods(http.MethodGet)
	api.HandleFunc("/field", srv.CreateFieldHandler).Methods(http.MethodPost)
	api.HandleFunc("/field/geojson/{geojsonId}", srv.GetFieldByGeoJSONIDHandler).Methods(http.MethodGet)
	api.HandleFunc("/field/geojson/{geojsonId}", srv.DeleteFieldByGeoJSONIDHandler).Methods(http.MethodDelete)
	api.HandleFunc("/field/{id}", srv.GetFieldHandler).Methods(http.MethodGet)
	api.HandleFunc("/field/{id}", srv.UpdateFieldHandler).Methods(http.MethodPut)
	api.HandleFunc("/field/{id}", srv.DeleteFieldHandler).Methods(http.MethodDelete)
	api.HandleFunc("/weather/{id}", srv.WeatherHandler).Methods(http.MethodGet)

	var handler http.Handler = r
	handler = handlers.CORS(corsOptions(cfg.CORSOrigin)...)(handler)
	handler = handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{cfg.Log}))(handler)
	handler = otelhttp.NewHandler(handler, "fields-api",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)

	return handler
}

// HealthHandler reports whether the database is reachable.
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	status, body := http.StatusOK, "OK"
	if err := s.fields.Ping(r.Context()); err != nil {
		s.log.WarnContext(r.Context(), "Health check failed", "error", err)
		status, body = http.StatusServiceUnavailable, "DB ping failed"
	}

	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		s.log.ErrorContext(r.Context(), "failed to write reply", "error", err)
	}
}

func corsOptions(origin string) []handlers.CORSOption {
	if origin == "" {
		origin = "*"
	}

	methods := handlers.AllowedMethods([]string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
	})
	origins := handlers.AllowedOrigins([]string{origin})
	headers := handlers.AllowedHeaders([]string{"Content-Type"})

	return []handlers.CORSOption{methods, origins, headers}
}

type recoveryLogger struct {
	log *slog.Logger
}

func (l recoveryLogger) Println(args ...any) {
	l.log.Error("Recovered from panic", "error", fmt.Sprint(args...))
}
