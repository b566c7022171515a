// Package respond writes JSON responses for the REST handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"ojitos/internal/dto"
)

func JSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// Error writes {"error": message}. The message is shown to the operator.
func Error(w http.ResponseWriter, status int, message string) {
	_ = JSON(w, status, dto.Error{Error: message})
}
