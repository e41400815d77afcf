package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Houeta/field-weather-service/internal/models"
	"github.com/Houeta/field-weather-service/internal/validation"
)

type errorResponse struct {
	Error   string             `json:"error"`
	Details []validation.Issue `json:"details,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type fieldResponse struct {
	Message string        `json:"message"`
	Field   *models.Field `json:"field"`
}

func respond(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, fmt.Sprintf("can't marshal the given payload: %v", err), http.StatusInternalServerError)
		slog.Error("failed to marshal response", "error", err)
		return
	}

	writeJSON(w, code, body)
}

// respondRaw writes an already encoded JSON document.
func respondRaw(w http.ResponseWriter, code int, body json.RawMessage) {
	writeJSON(w, code, body)
}

func writeJSON(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func respondErr(w http.ResponseWriter, code int, message string, details ...validation.Issue) {
	respond(w, code, errorResponse{Error: message, Details: details})
}
