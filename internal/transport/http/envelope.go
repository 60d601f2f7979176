package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aretw0/registro/pkg/core"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	// msgInternal is the only detail a client sees for unexpected failures.
	msgInternal = "internal server error"
)

// envelope is the shape of every JSON response.
type envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Version string `json:"version,omitempty"`
}

func success(data any) envelope {
	return envelope{Status: statusSuccess, Data: data}
}

func (e envelope) withMessage(msg string) envelope {
	e.Message = msg
	return e
}

func (e envelope) withCount(n int) envelope {
	e.Count = &n
	return e
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Status: statusError, Message: msg})
}

// statusFor translates domain errors to HTTP status codes. Anything it does
// not recognise is a server error and must not leak its message.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrValidation),
		errors.Is(err, core.ErrDuplicateControl),
		errors.Is(err, core.ErrUnsupportedFormat),
		errors.Is(err, errBodyRequired):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
