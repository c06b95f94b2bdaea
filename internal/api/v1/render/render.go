// Package render writes JSON response bodies.
package render

import (
	"encoding/json"
	"net/http"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// Detail writes {"detail": msg}, the body used for every non-validation error.
func Detail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"detail": msg})
}

// DetailCode writes {"detail": msg, "code": code}.
func DetailCode(w http.ResponseWriter, status int, msg, code string) {
	JSON(w, status, map[string]string{"detail": msg, "code": code})
}
