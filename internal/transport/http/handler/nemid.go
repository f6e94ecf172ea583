package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nemid-codegen/internal/application/nemid"
	"github.com/nemid-codegen/internal/domain"
)

// NemIDHandler serves POST /nemid-auth.
type NemIDHandler struct {
	svc          nemid.Service
	mirrorStatus bool
}

// NewNemIDHandler builds the handler. With mirrorStatus false every verdict
// goes out as HTTP 200 and only the body's statusCode tells success from
// rejection.
func NewNemIDHandler(svc nemid.Service, mirrorStatus bool) *NemIDHandler {
	return &NemIDHandler{svc: svc, mirrorStatus: mirrorStatus}
}

func (h *NemIDHandler) Auth(w http.ResponseWriter, r *http.Request) {
	var req domain.VerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.svc.Verify(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrStorageUnavailable) {
			slog.Error("nemid-auth: identity store unavailable", "err", err)
		} else {
			slog.Error("nemid-auth: verification failed", "err", err)
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	status := http.StatusOK
	if h.mirrorStatus {
		status = res.StatusCode
	}
	writeJSON(w, status, res)
}
