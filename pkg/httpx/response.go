package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes v with the given status code. Content-Type and nosniff headers
// are set before the body. Encoding errors are discarded; by the time they
// can occur the status line is already on the wire, so there is nothing
// useful left to report to the client.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes the standard {"error": message} body used by every
// handler error path.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
