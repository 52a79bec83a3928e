package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/komainu/pkg/domain/types/apperr"
	"github.com/m-mizutani/komainu/pkg/utils/errors"
)

type errorResponse struct {
	Error string      `json:"error"`
	Kind  apperr.Kind `json:"kind,omitempty"`
}

// handleError maps an error to an HTTP response. Clients branch on the
// kind field, not the message.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	ctxlog.From(r.Context()).Warn("request error",
		"error", err,
		"path", r.URL.Path,
		"method", r.Method,
	)

	status := apperr.HTTPStatusFromError(err)
	resp := errorResponse{
		Error: err.Error(),
		Kind:  apperr.KindOf(err),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		errors.Handle(r.Context(), encodeErr)
	}
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		errors.Handle(r.Context(), err)
	}
}
