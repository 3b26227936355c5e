package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/readsync/internal/utils"
	"github.com/MKhiriev/readsync/models"
)

// maxContentSize limits a single content file upload.
const maxContentSize = 256 << 20

func (h *Handler) ensureContentFolder(w http.ResponseWriter, r *http.Request) {
	account, ok := h.account(w, r)
	if !ok {
		return
	}

	if err := h.services.BlobService.EnsureContentFolder(r.Context(), account); err != nil {
		h.writeError(w, r, err, "error creating content folder")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listContent(w http.ResponseWriter, r *http.Request) {
	account, ok := h.account(w, r)
	if !ok {
		return
	}

	files, err := h.services.BlobService.ListContent(r.Context(), account)
	if err != nil {
		h.writeError(w, r, err, "error listing content files")
		return
	}
	if files == nil {
		files = []string{}
	}

	if _, err = utils.WriteJSON(w, models.ContentList{Files: files}, http.StatusOK); err != nil {
		h.requestLogger(r).Err(err).Msg("error writing content list")
	}
}

func (h *Handler) putContent(w http.ResponseWriter, r *http.Request) {
	account, ok := h.account(w, r)
	if !ok {
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxContentSize))
	if err != nil {
		h.writeError(w, r, errDecode(err), "error reading content body")
		return
	}

	name := chi.URLParam(r, "name")
	if err = h.services.BlobService.PutContent(r.Context(), account, name, data); err != nil {
		h.writeError(w, r, err, "error storing content file")
		return
	}

	h.requestLogger(r).Debug().Str("name", name).Int("size", len(data)).Msg("content file stored")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getContent(w http.ResponseWriter, r *http.Request) {
	account, ok := h.account(w, r)
	if !ok {
		return
	}

	data, err := h.services.BlobService.GetContent(r.Context(), account, chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, err, "error reading content file")
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(data); err != nil {
		h.requestLogger(r).Err(err).Msg("error writing content file")
	}
}

func (h *Handler) deleteContent(w http.ResponseWriter, r *http.Request) {
	account, ok := h.account(w, r)
	if !ok {
		return
	}

	deleted, err := h.services.BlobService.DeleteContent(r.Context(), account, chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, err, "error deleting content file")
		return
	}
	if !deleted {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
