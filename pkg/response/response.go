// Package response writes JSON HTTP responses in the shapes the catalog API
// promises to its client: plain objects and arrays on success, {"error": msg}
// on failure, {"message": msg} for confirmations.
package response

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
)

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// JSON sends a 200 response with v encoded as the body.
func JSON(w http.ResponseWriter, v interface{}) {
	write(w, http.StatusOK, v)
}

// Created sends a 201 response with v encoded as the body.
func Created(w http.ResponseWriter, v interface{}) {
	write(w, http.StatusCreated, v)
}

// Message sends a 200 confirmation body: {"message": msg}.
func Message(w http.ResponseWriter, msg string) {
	write(w, http.StatusOK, map[string]string{"message": msg})
}

// Error sends an error body: {"error": msg} with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	write(w, status, map[string]string{"error": msg})
}

// ValidationError sends a 400 whose message joins the per-field failures in
// a stable (alphabetical) order, e.g.
// "name: The name field is required.; price: The price field is required.".
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+errs[f])
	}

	Error(w, http.StatusBadRequest, strings.Join(parts, "; "))
}

// NotFound sends a 404 with the given message.
func NotFound(w http.ResponseWriter, msg string) {
	Error(w, http.StatusNotFound, msg)
}

// Conflict sends a 409 with the given message.
func Conflict(w http.ResponseWriter, msg string) {
	Error(w, http.StatusConflict, msg)
}
