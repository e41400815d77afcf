package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Houeta/field-weather-service/internal/metrics"
	"github.com/Houeta/field-weather-service/internal/models"
	"github.com/Houeta/field-weather-service/internal/service"
	"github.com/Houeta/field-weather-service/internal/transport/rest/handler"
	"github.com/Houeta/field-weather-service/internal/validation"
	"github.com/Houeta/field-weather-service/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error   string `json:"error"`
	Details []struct {
		Message string `json:"message"`
		Path    []any  `json:"path"`
	} `json:"details"`
}

func newRouter(t *testing.T, fields handler.FieldService, weather handler.WeatherService) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return handler.NewRouter(handler.NewServer(fields, weather, logger), handler.RouterConfig{
		Log:        logger,
		Metrics:    metrics.NewMetrics(reg),
		Gatherer:   reg,
		CORSOrigin: "https://app.test",
	})
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestCreateFieldHandler(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("CreateField", mock.Anything, []byte(`{"name":"Farm A"}`)).
			Return(&models.Field{ID: 1, Name: "Farm A", GeoJSON: json.RawMessage(`{}`)}, nil).Once()

		rec := serve(router, http.MethodPost, "/api/field", `{"name":"Farm A"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body struct {
			Message string       `json:"message"`
			Field   models.Field `json:"field"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Field created successfully", body.Message)
		assert.Equal(t, int64(1), body.Field.ID)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("CreateField", mock.Anything, mock.Anything).Return(nil, &validation.Error{Issues: []validation.Issue{
			{Message: validation.MsgNameRequired, Path: []any{"name"}},
			{Message: validation.MsgAreaTooLarge, Path: []any{"geojson"}},
		}}).Once()

		rec := serve(router, http.MethodPost, "/api/field", `{}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "Invalid input", body.Error)
		require.Len(t, body.Details, 2)
		assert.Equal(t, validation.MsgNameRequired, body.Details[0].Message)
		assert.Equal(t, []any{"name"}, body.Details[0].Path)
	})

	t.Run("duplicate geometry", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("CreateField", mock.Anything, mock.Anything).Return(nil, service.ErrDuplicateGeometry).Once()

		rec := serve(router, http.MethodPost, "/api/field", `{}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("CreateField", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

		rec := serve(router, http.MethodPost, "/api/field", `{}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to create field", decodeError(t, rec).Error)
	})

	t.Run("body over the size limit", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		payload := `{"name":"` + strings.Repeat("a", 1<<20) + `"}`
		rec := serve(router, http.MethodPost, "/api/field", payload)

		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "Request body too large", body.Error)
		require.Len(t, body.Details, 1)
		assert.Equal(t, "Request body must be 1048576 bytes or less", body.Details[0].Message)
		fields.AssertNotCalled(t, "CreateField", mock.Anything, mock.Anything)
	})
}

func TestFieldReadHandlers(t *testing.T) {
	t.Parallel()

	t.Run("list fields", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("ListFields", mock.Anything).Return([]models.Field{
			{ID: 2, Name: "Alpha", GeoJSON: json.RawMessage(`{}`)},
			{ID: 1, Name: "Beta", GeoJSON: json.RawMessage(`{}`)},
		}, nil).Once()

		rec := serve(router, http.MethodGet, "/api/fields", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got []models.Field
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Alpha", got[0].Name)
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()
		router := newRouter(t, mocks.NewFieldService(t), mocks.NewWeatherService(t))

		for _, target := range []string{"/api/field/abc", "/api/field/0", "/api/weather/-1"} {
			rec := serve(router, http.MethodGet, target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		}
	})

	t.Run("field by id not found", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("GetField", mock.Anything, int64(5)).Return(nil, service.ErrFieldNotFound).Once()

		rec := serve(router, http.MethodGet, "/api/field/5", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Field not found", decodeError(t, rec).Error)
	})

	t.Run("field by geojson id", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("GetFieldByGeoJSONID", mock.Anything, "c0ffee").
			Return(&models.Field{ID: 3, Name: "Farm C", GeoJSON: json.RawMessage(`{"id":"c0ffee"}`)}, nil).Once()

		rec := serve(router, http.MethodGet, "/api/field/geojson/c0ffee", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Farm C"`)
	})
}

func TestUpdateFieldHandler(t *testing.T) {
	t.Parallel()

	t.Run("updated", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("UpdateField", mock.Anything, int64(7), []byte(`{"name":"Renamed"}`)).
			Return(&models.Field{ID: 7, Name: "Renamed", GeoJSON: json.RawMessage(`{}`)}, nil).Once()

		rec := serve(router, http.MethodPut, "/api/field/7", `{"name":"Renamed"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Field updated successfully")
	})

	t.Run("missing field", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("UpdateField", mock.Anything, int64(7), mock.Anything).Return(nil, service.ErrFieldNotFound).Once()

		rec := serve(router, http.MethodPut, "/api/field/7", `{"name":"Renamed"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeError(t, rec)
		require.Len(t, body.Details, 1)
		assert.Equal(t, "Field with id 7 does not exist", body.Details[0].Message)
		assert.Equal(t, []any{"id"}, body.Details[0].Path)
	})

	t.Run("neither name nor description", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("UpdateField", mock.Anything, int64(7), mock.Anything).Return(nil, service.ErrEmptyUpdate).Once()

		rec := serve(router, http.MethodPut, "/api/field/7", `{}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "Invalid input", body.Error)
		require.Len(t, body.Details, 1)
		assert.Empty(t, body.Details[0].Path)
	})
}

func TestDeleteFieldHandlers(t *testing.T) {
	t.Parallel()

	t.Run("deleted by id", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("DeleteField", mock.Anything, int64(4)).Return(nil).Once()

		rec := serve(router, http.MethodDelete, "/api/field/4", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Field deleted successfully"}`, rec.Body.String())
	})

	t.Run("geojson id not found", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("DeleteFieldByGeoJSONID", mock.Anything, "c0ffee").Return(service.ErrFieldNotFound).Once()

		rec := serve(router, http.MethodDelete, "/api/field/geojson/c0ffee", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWeatherHandler(t *testing.T) {
	t.Parallel()

	t.Run("payload is passed through", func(t *testing.T) {
		t.Parallel()
		weather := mocks.NewWeatherService(t)
		router := newRouter(t, mocks.NewFieldService(t), weather)
		payload := `{"hourly":{"temperature_2m":[3.5]}}`

		weather.On("ResolveWeatherForField", mock.Anything, int64(1)).Return(json.RawMessage(payload), nil).Once()

		rec := serve(router, http.MethodGet, "/api/weather/1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, payload, rec.Body.String())
	})

	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"field not found", service.ErrFieldNotFound, http.StatusNotFound, "Field not found"},
		{"no station", service.ErrNoStationAvailable, http.StatusNotFound, "No weather station found"},
		{"invalid geometry", service.ErrInvalidGeometry, http.StatusUnprocessableEntity, "Field geometry is invalid"},
		{"degenerate polygon", service.ErrDegeneratePolygon, http.StatusUnprocessableEntity, "Field geometry is invalid"},
		{"upstream failure", service.ErrUpstreamWeatherFailure, http.StatusInternalServerError, "Failed to fetch weather data"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			weather := mocks.NewWeatherService(t)
			router := newRouter(t, mocks.NewFieldService(t), weather)

			weather.On("ResolveWeatherForField", mock.Anything, int64(9)).Return(nil, tc.err).Once()

			rec := serve(router, http.MethodGet, "/api/weather/9", "")

			require.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.message, decodeError(t, rec).Error)
		})
	}
}

func TestAmbientRoutes(t *testing.T) {
	t.Parallel()

	t.Run("ping", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("Ping", mock.Anything).Return(nil).Once()
		fields.On("Ping", mock.Anything).Return(assert.AnError).Once()

		rec := serve(router, http.MethodGet, "/api", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Database connection successful"}`, rec.Body.String())

		rec = serve(router, http.MethodGet, "/api", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("healthz", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("Ping", mock.Anything).Return(assert.AnError).Once()

		rec := serve(router, http.MethodGet, "/healthz", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "DB ping failed", rec.Body.String())
	})

	t.Run("metrics report handled routes", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("ListFields", mock.Anything).Return([]models.Field{}, nil).Once()

		serve(router, http.MethodGet, "/api/fields", "")
		rec := serve(router, http.MethodGet, "/metrics", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `fields_http_requests_total{code="200",method="GET",route="/api/fields"} 1`)
	})

	t.Run("cors origin", func(t *testing.T) {
		t.Parallel()
		fields := mocks.NewFieldService(t)
		router := newRouter(t, fields, mocks.NewWeatherService(t))

		fields.On("ListFields", mock.Anything).Return([]models.Field{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/fields", nil)
		req.Header.Set("Origin", "https://app.test")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "https://app.test", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
