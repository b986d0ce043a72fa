package proxy

import (
	"errors"
	"net/http"

	"ollama-bridge/pkg/ollama"
	"ollama-bridge/pkg/proxy/types"
)

// HandleError maps an error to an HTTP status and detail text. Request
// errors keep their own status; every backend failure is a 500 carrying the
// error text.
func HandleError(err error) (int, string) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		status := reqErr.StatusCode
		if status == 0 {
			status = http.StatusUnprocessableEntity
		}
		return status, reqErr.Message
	}

	return http.StatusInternalServerError, err.Error()
}

// StreamErrorResponse builds the payload of the SSE error frame written when
// a stream fails after headers were sent.
func StreamErrorResponse(err error) *types.ErrorResponse {
	if errors.Is(err, ollama.ErrIdleTimeout) {
		return types.NewErrorResponse(err.Error(), types.ErrorTypeTimeout, types.CodeStreamIdleTimeout)
	}

	var perr *ollama.ProtocolError
	if errors.As(err, &perr) {
		return types.NewErrorResponse(perr.Message, types.ErrorTypeBackend, types.CodeBackendError)
	}

	return types.NewErrorResponse(err.Error(), types.ErrorTypeBackend, types.CodeStreamInterrupted)
}
