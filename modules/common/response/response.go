package response

import (
	"encoding/json"
	"net/http"
)

// JSON - writes v as the JSON body with the given status
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
