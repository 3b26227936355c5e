package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/readsync/internal/service"
	"github.com/MKhiriev/readsync/internal/utils"
	"github.com/MKhiriev/readsync/models"
)

// maxStateSize limits a state upload.
const maxStateSize = 32 << 20

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	account, ok := h.account(w, r)
	if !ok {
		return
	}

	blob, err := h.services.BlobService.GetState(r.Context(), account)
	if err != nil {
		h.writeError(w, r, err, "error getting state blob")
		return
	}

	if _, err = utils.WriteJSON(w, blob, http.StatusOK); err != nil {
		h.requestLogger(r).Err(err).Msg("error writing state blob")
	}
}

func (h *Handler) putState(w http.ResponseWriter, r *http.Request) {
	account, ok := h.account(w, r)
	if !ok {
		return
	}

	var blob models.EncryptedBlob
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxStateSize))
	if err := decoder.Decode(&blob); err != nil {
		h.writeError(w, r, errDecode(err), "invalid state body")
		return
	}

	result, err := h.services.BlobService.PutState(r.Context(), account, blob)
	if err != nil {
		h.writeError(w, r, err, "error storing state blob")
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		h.requestLogger(r).Err(err).Msg("error writing upload result")
	}
}

func (h *Handler) getStateMeta(w http.ResponseWriter, r *http.Request) {
	account, ok := h.account(w, r)
	if !ok {
		return
	}

	meta, err := h.services.BlobService.GetStateMetadata(r.Context(), account)
	if err != nil {
		h.writeError(w, r, err, "error getting state metadata")
		return
	}

	if _, err = utils.WriteJSON(w, meta, http.StatusOK); err != nil {
		h.requestLogger(r).Err(err).Msg("error writing state metadata")
	}
}

// errDecode keeps body-size errors intact and reports everything else as
// invalid input.
func errDecode(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return err
	}
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}
