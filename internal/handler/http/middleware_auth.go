package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/readsync/internal/utils"
)

// auth rejects requests without a valid bearer token with 401 and stores
// the token subject in the request context under utils.AccountCtxKey.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := h.requestLogger(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err, "rejected bearer token")
			return
		}

		ctx = context.WithValue(ctx, utils.AccountCtxKey, token.Account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
