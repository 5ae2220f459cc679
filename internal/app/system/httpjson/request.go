// internal/app/system/httpjson/request.go
package httpjson

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// MaxBodySize limits JSON request bodies.
const MaxBodySize = 1 << 20 // 1 MB

// Decode reads the request body into dest, limiting its size.
// Returns an error suitable for a 400 response.
func Decode(w http.ResponseWriter, r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
