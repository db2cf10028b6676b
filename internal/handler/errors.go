package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/tabi-shiori/internal/domain"
	"github.com/pkordes/tabi-shiori/internal/handler/gen"
)

// validationBody returns an ErrorResponse for input rejected by the codec or
// the service layer (unknown op, missing payload, wrong trip shape).
// The message is extracted from the wrapped sentinel error.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a request rejected before
// reaching a handler (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: message}}
}

// requestError answers requests the generated layer could not bind:
// 413 when the body limit tripped, 422 otherwise.
func requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, gen.ErrorResponse{
			Error: gen.ErrorDetail{Code: "too_large", Message: "request body too large"},
		})
		return
	}
	var param *gen.InvalidParamFormatError
	if errors.As(err, &param) {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(param.Error()))
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, requestBody("malformed request body"))
}

// responseError answers an error returned by a handler. Expected failures
// are typed responses, so anything reaching here is logged as a 500.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("request failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, gen.ErrorResponse{
		Error: gen.ErrorDetail{Code: "internal", Message: "internal server error"},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// unwrapMessage strips the sentinel prefix from a wrapped domain error.
// e.g. "validation error: add_spot requires spot" → "add_spot requires spot"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []error{domain.ErrValidation, domain.ErrDecode} {
		if i := strings.Index(msg, sentinel.Error()+": "); i >= 0 {
			return msg[i+len(sentinel.Error())+2:]
		}
	}
	return msg
}
