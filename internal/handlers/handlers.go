// Package handlers contains the HTTP handlers for the crew log PDF
// service.
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jaxzo84/five-parsecs-builder/internal/crew"
	"github.com/jaxzo84/five-parsecs-builder/internal/render"
	"github.com/jaxzo84/five-parsecs-builder/pkg/models"
)

// defaultMaxBodyBytes bounds the crew record payload; a full roster is
// a few kilobytes.
const defaultMaxBodyBytes = 1 << 20

// Handler contains dependencies for HTTP handlers
type Handler struct {
	maxBodyBytes int64
}

// New creates a handler with the default request body limit
func New() *Handler {
	return &Handler{maxBodyBytes: defaultMaxBodyBytes}
}

// HealthCheck returns the health status of the service
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "pdf-service",
	})
}

// RenderCrewLog accepts a crew record as JSON and synchronously
// returns the rendered crew log PDF as a download. Parse and render
// failures are surfaced as a plain-text 500; the service keeps
// serving.
func (h *Handler) RenderCrewLog(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		respondFailure(w, "reading crew record", err)
		return
	}

	record, err := crew.Parse(body)
	if err != nil {
		respondFailure(w, "parsing crew record", err)
		return
	}

	pdf, err := render.Assemble(record)
	if err != nil {
		respondFailure(w, "rendering crew log", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="crew_log.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("writing PDF response: %v", err)
		return
	}

	name := record.Name
	if name == "" {
		name = "(unnamed)"
	}
	log.Printf("PDF generated (%d bytes) for crew %q", len(pdf), name)
}

// NotFound handles requests for unknown paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, fmt.Sprintf("no route for %s", r.URL.Path), nil)
}

// Helper functions

// respondFailure logs a parse or render failure and surfaces it as a
// plain-text server error, which the browser builder displays as-is.
func respondFailure(w http.ResponseWriter, message string, err error) {
	log.Printf("error: %s - %v", message, err)
	http.Error(w, fmt.Sprintf("%s: %v", message, err), http.StatusInternalServerError)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

// respondError writes the JSON error envelope used by non-document
// endpoints.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		log.Printf("error: %s - %v", message, err)
	}
	respondJSON(w, status, models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
