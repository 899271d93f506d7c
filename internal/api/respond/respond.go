// Package respond writes the gateway's JSON responses. Errors are always the
// flat `{"msg": ...}` payload callers rely on.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Message is the generic response payload, used for every error and for
// simple acknowledgements.
type Message struct {
	Msg string `json:"msg"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteMsg writes a `{"msg": ...}` payload with the given status code.
func WriteMsg(w http.ResponseWriter, statusCode int, msg string) {
	WriteJSON(w, statusCode, Message{Msg: msg})
}
