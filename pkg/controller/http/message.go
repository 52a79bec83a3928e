package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/komainu/pkg/domain/interfaces"
	"github.com/m-mizutani/komainu/pkg/domain/model/message"
	"github.com/m-mizutani/komainu/pkg/domain/types/apperr"
)

type renderRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Model   string `json:"model,omitempty"`
}

type listRendersResponse struct {
	Renders    []*message.Rendered `json:"renders"`
	TotalCount int                 `json:"total_count"`
}

// renderMessageHandler converts posted message content into a block tree
func renderMessageHandler(uc interfaces.MessageUseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req renderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handleError(w, r, goerr.Wrap(err, "invalid request body", goerr.T(apperr.ErrTagInvalidInput)))
			return
		}

		role := message.Role(req.Role)
		if req.Role == "" {
			role = message.RoleAssistant
		}

		msg := message.New(r.Context(), role, req.Content)
		msg.Model = req.Model

		rendered, err := uc.RenderMessage(r.Context(), msg)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, rendered)
	}
}

// listRendersHandler returns the most recent renders, newest first
func listRendersHandler(uc interfaces.MessageUseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				handleError(w, r, goerr.New("invalid limit parameter",
					goerr.T(apperr.ErrTagInvalidInput),
					goerr.V("limit", raw),
				))
				return
			}
			limit = parsed
		}

		renders, err := uc.ListRenders(r.Context(), limit)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, listRendersResponse{
			Renders:    renders,
			TotalCount: len(renders),
		})
	}
}
