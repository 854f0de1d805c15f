package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON encodes data as JSON and writes it with statusCode and an
// "application/json" content type. A value that cannot be encoded yields a
// 500 response and an error.
//
//	WriteJSON(w, envelopes, http.StatusOK)
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

// WriteError writes message in a {"error": message} JSON body.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, map[string]string{"error": message}, statusCode)
}
