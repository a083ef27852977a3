package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Parameters:
//
//	w          - the HTTP response writer to write the response to
//	data       - any value to be serialized as JSON (struct, map, slice, nil, etc.)
//	statusCode - HTTP status code to set in the response (e.g. http.StatusOK)
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if JSON marshaling fails
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
//	WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteEvent writes one Server-Sent Events record to w and flushes it.
//
// An empty name omits the "event:" line, and every line of data becomes its
// own "data:" line. The record is terminated by a blank line. The caller is
// expected to have set the "Content-Type: text/event-stream" header.
//
// Example usage:
//
//	utils.WriteEvent(w, "sleep", `{"score":7}`)
func WriteEvent(w http.ResponseWriter, name, data string) error {
	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "event: %s\n", name)
	}
	if data != "" {
		for _, line := range strings.Split(data, "\n") {
			fmt.Fprintf(&b, "data: %s\n", line)
		}
	}
	b.WriteString("\n")

	if _, err := w.Write([]byte(b.String())); err != nil {
		return fmt.Errorf("error writing event: %w", err)
	}
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	return nil
}
