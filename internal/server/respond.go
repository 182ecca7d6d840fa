package server

import (
	"encoding/json"
	"net/http"
)

// response is the JSON envelope for every reply.
type response struct {
	Status string       `json:"status"`
	Error  *errorDetail `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, response{Status: "ok"})
}

// writeClientError reports a caller fault; message and fields are safe to
// expose because they describe the caller's input, not our internals.
func writeClientError(w http.ResponseWriter, status int, code, message string, fields map[string][]string) {
	writeJSON(w, status, response{
		Status: "error",
		Error:  &errorDetail{Code: code, Message: message, Fields: fields},
	})
}

// writeServerError deliberately carries no detail: driver errors, query text,
// and causal chains stay in the logs.
func writeServerError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, response{
		Status: "error",
		Error:  &errorDetail{Code: "internal_error"},
	})
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
