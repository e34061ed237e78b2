package handlers

import (
	"encoding/json"
	"net/http"
)

type errorItem struct {
	Msg string `json:"msg"`
}

type errorBody struct {
	Errors []errorItem `json:"errors"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeErrors writes the {errors:[{msg}]} body clients expect for
// validation and credential failures.
func writeErrors(w http.ResponseWriter, status int, msgs ...string) {
	body := errorBody{Errors: make([]errorItem, 0, len(msgs))}
	for _, msg := range msgs {
		body.Errors = append(body.Errors, errorItem{Msg: msg})
	}
	writeJSON(w, status, body)
}

// writeServerError hides infrastructure detail behind an opaque failure.
func writeServerError(w http.ResponseWriter) {
	http.Error(w, "Server Error", http.StatusInternalServerError)
}
