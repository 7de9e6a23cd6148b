package httputil

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// WriteErrorResponse sends an ErrorResponse; details is optional.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) error {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	return writeJSON(w, statusCode, resp, sonic.ConfigFastest)
}

// WriteJSONResponse sends body as JSON. A nil body only writes the status.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) error {
	return writeJSON(w, statusCode, body, sonic.ConfigDefault)
}

// Headers are already sent when encoding fails, so the failure is logged and
// handed back to the caller.
func writeJSON(w http.ResponseWriter, statusCode int, body any, api sonic.API) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body == nil {
		return nil
	}
	if err := api.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding response error", slog.Int("status", statusCode), slog.String("error", err.Error()))
		return err
	}
	return nil
}
