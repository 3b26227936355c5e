package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/readsync/internal/app"
	"github.com/MKhiriev/readsync/internal/provider"
	"github.com/MKhiriev/readsync/internal/service"
	"github.com/MKhiriev/readsync/internal/store"
)

// statusFromError maps service and provider errors to a response status and
// a message that is safe to send to the client.
func statusFromError(err error) (int, string) {
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, service.ErrStateNotFound),
		errors.Is(err, service.ErrContentNotFound):
		return http.StatusNotFound, notFoundMessage(err)
	case errors.Is(err, service.ErrInvalidAccount):
		return http.StatusBadRequest, app.MsgInvalidAccount
	case errors.Is(err, service.ErrInvalidDataProvided):
		return http.StatusBadRequest, app.MsgInvalidDataProvided
	case errors.As(err, &maxBytesErr), errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, app.MsgBodyTooLarge
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return http.StatusConflict, app.MsgLoginAlreadyExists
	case errors.Is(err, store.ErrNoUserWasFound), errors.Is(err, service.ErrWrongPassword):
		return http.StatusUnauthorized, app.MsgInvalidCredentials
	}

	switch provider.KindOf(err) {
	case provider.KindNotFound:
		return http.StatusNotFound, http.StatusText(http.StatusNotFound)
	case provider.KindPermissionDenied:
		return http.StatusForbidden, app.MsgAccessDenied
	case provider.KindAborted:
		return http.StatusServiceUnavailable, app.MsgStorageUnavailable
	}

	return http.StatusInternalServerError, app.MsgInternalServerError
}

func notFoundMessage(err error) string {
	if errors.Is(err, service.ErrContentNotFound) {
		return app.MsgContentNotFound
	}
	return app.MsgStateNotFound
}

// writeError logs err and answers the request with the mapped status.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, text := statusFromError(err)

	log := h.requestLogger(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	http.Error(w, text, status)
}
