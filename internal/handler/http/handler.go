package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/readsync/internal/logger"
	"github.com/MKhiriev/readsync/internal/service"
	"github.com/MKhiriev/readsync/internal/utils"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

// account returns the authenticated account of r. It answers 401 itself
// when the auth middleware did not run.
func (h *Handler) account(w http.ResponseWriter, r *http.Request) (string, bool) {
	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok || account == "" {
		h.requestLogger(r).Err(ErrNoAccountInContext).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}
	return account, true
}

// requestLogger returns the logger attached by withTraceID, or the
// handler's own logger for requests that bypassed it.
func (h *Handler) requestLogger(r *http.Request) *logger.Logger {
	l := logger.FromRequest(r)
	if l.GetLevel() == zerolog.Disabled {
		return h.logger
	}
	return l
}
