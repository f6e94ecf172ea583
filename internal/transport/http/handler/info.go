package handler

import "net/http"

// InfoHandler serves the static landing payload on GET /.
type InfoHandler struct {
	payload map[string]string
}

func NewInfoHandler(apiTitle, docsURL string) *InfoHandler {
	return &InfoHandler{payload: map[string]string{apiTitle + ", Documentation": docsURL}}
}

func (h *InfoHandler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.payload)
}
