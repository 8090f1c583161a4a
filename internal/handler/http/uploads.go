package http

import (
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getUpload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, err := h.services.MediaService.OpenUpload(r.Context(), name)
	if err != nil {
		writeError(w, r, "Handler.getUpload", err)
		return
	}
	defer body.Close()

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, body); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.getUpload").Msg("error streaming upload")
	}
}
