package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Record-store endpoints answer with a success/error envelope; tool endpoints
// answer with a bare result or an error detail.

type storeEnvelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type toolResult struct {
	Result string `json:"result"`
}

type errorDetail struct {
	Detail string `json:"detail"`
}

type queryRequest struct {
	Text string `json:"text"`
}

type queryResponse struct {
	Response string `json:"response"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("encode response body")
	}
}

func writeStoreSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, storeEnvelope{Status: "success", Data: data})
}

func writeStoreError(w http.ResponseWriter, message string) {
	// Business misses keep HTTP 200; the envelope carries the outcome.
	writeJSON(w, http.StatusOK, storeEnvelope{Status: "error", Message: message})
}

func writeToolResult(w http.ResponseWriter, result string) {
	writeJSON(w, http.StatusOK, toolResult{Result: result})
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorDetail{Detail: detail})
}
